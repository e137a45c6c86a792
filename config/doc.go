// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Defaults are applied after validation and a handful of environment
// variables (SERVER_PORT, DATA_DIR, WEB_ROOT), optionally supplied through a
// .env file, override the file on top. Load returns the configuration as a
// plain value that is never mutated after startup.
package config
