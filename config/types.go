package config

// ServerConfig contains the HTTP server configuration.
type ServerConfig struct {
	Port    int    `yaml:"port" validate:"gte=0"`
	WebRoot string `yaml:"webRoot"`
}

// LegConfig wires one route segment to its timetable CSV.
type LegConfig struct {
	Key  string `yaml:"key" validate:"required"`
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
	Line string `yaml:"line" validate:"required"`
	File string `yaml:"file" validate:"required"`
}

// TransferConfig sets the change-train buffer for one interchange station.
type TransferConfig struct {
	Station string `yaml:"station" validate:"required"`
	Minutes int    `yaml:"minutes" validate:"gte=0"`
}

// TimetableConfig declares the leg chain and where its data lives.
type TimetableConfig struct {
	DataDir   string           `yaml:"dataDir"`
	Legs      []LegConfig      `yaml:"legs" validate:"len=3"`
	Transfers []TransferConfig `yaml:"transfers" validate:"len=2"`
}

// SearchConfig holds the query-window defaults. The fallback applied to a
// non-integer max_offset is a separate value from the documented default;
// both ship with the historical values (30 and 3).
type SearchConfig struct {
	Timezone                     string `yaml:"timezone"`
	DefaultMaxOffsetMinutes      int    `yaml:"defaultMaxOffsetMinutes" validate:"gte=0"`
	InvalidOffsetFallbackMinutes int    `yaml:"invalidOffsetFallbackMinutes" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Timetable TimetableConfig `yaml:"timetable"`
	Search    SearchConfig    `yaml:"search"`
}
