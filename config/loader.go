package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied when config.yml leaves a field unset.
const (
	DefaultPort                         = 8080
	DefaultDataDir                      = "data"
	DefaultTimezone                     = "Asia/Tokyo"
	DefaultMaxOffsetMinutes             = 30
	DefaultInvalidOffsetFallbackMinutes = 3
)

// Load reads, validates and defaults the application configuration. When
// path is empty the usual file names are tried in order. A .env file, when
// present, supplies the environment overrides.
func Load(path string) (*AppConfig, error) {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "config.yaml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return nil, fmt.Errorf("validate server config: %w", err)
	}
	if err := v.Struct(cfg.Timetable); err != nil {
		return nil, fmt.Errorf("validate timetable config: %w", err)
	}
	for _, leg := range cfg.Timetable.Legs {
		if err := v.Struct(leg); err != nil {
			return nil, fmt.Errorf("validate leg %q: %w", leg.Key, err)
		}
	}
	for _, tr := range cfg.Timetable.Transfers {
		if err := v.Struct(tr); err != nil {
			return nil, fmt.Errorf("validate transfer %q: %w", tr.Station, err)
		}
	}
	if err := v.Struct(cfg.Search); err != nil {
		return nil, fmt.Errorf("validate search config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Timetable.DataDir == "" {
		cfg.Timetable.DataDir = DefaultDataDir
	}
	if cfg.Search.Timezone == "" {
		cfg.Search.Timezone = DefaultTimezone
	}
	if cfg.Search.DefaultMaxOffsetMinutes == 0 {
		cfg.Search.DefaultMaxOffsetMinutes = DefaultMaxOffsetMinutes
	}
	if cfg.Search.InvalidOffsetFallbackMinutes == 0 {
		cfg.Search.InvalidOffsetFallbackMinutes = DefaultInvalidOffsetFallbackMinutes
	}
}

// applyEnvOverrides lets deployment environments adjust paths and the port
// without editing config.yml. A .env file is optional.
func applyEnvOverrides(cfg *AppConfig) {
	_ = godotenv.Load()
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Timetable.DataDir = v
	}
	if v := os.Getenv("WEB_ROOT"); v != "" {
		cfg.Server.WebRoot = v
	}
}
