// Package config loads termsql configuration from defaults, termsql.yaml,
// TERMSQL_* environment variables and command-line flags, and applies it to
// the registered dialects.
package config

import (
	"log/slog"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
)

// Config holds all termsql configuration options.
type Config struct {
	Dialect string        `koanf:"dialect"`
	Output  string        `koanf:"output"`
	Verbose bool          `koanf:"verbose"`
	Paging  PagingConfig  `koanf:"paging"`
	Log     LogConfig     `koanf:"log"`
	Target  *TargetConfig `koanf:"target"`
	Types   TypesConfig   `koanf:"types"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// PagingConfig controls pagination rendering.
type PagingConfig struct {
	// Prepare renders page bounds as #{_page.*} placeholders instead of literals.
	Prepare bool `koanf:"prepare"`
	Size    int  `koanf:"size"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
}

// TargetConfig holds database target configuration.
type TargetConfig struct {
	Type string `koanf:"type"` // postgres, mysql, sqlite, duckdb

	// File-based databases (DuckDB, SQLite)
	Path string `koanf:"path"`

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	Schema string `koanf:"schema"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`

	// Params holds adapter-specific configuration (e.g., DuckDB extensions, settings)
	Params map[string]any `koanf:"params"`
}

// TypesConfig holds per-dialect native type overrides:
// dialect name -> native token -> standard type.
type TypesConfig struct {
	Overrides map[string]map[string]core.StandardType `koanf:"overrides"`
}

// AdapterConfig converts the target to an adapter configuration.
func (t *TargetConfig) AdapterConfig() core.AdapterConfig {
	if t == nil {
		return core.AdapterConfig{}
	}
	return core.AdapterConfig{
		Type:     strings.ToLower(t.Type),
		Path:     t.Path,
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		Username: t.User,
		Password: t.Password,
		Schema:   t.Schema,
		Options:  t.Options,
		Params:   t.Params,
	}
}

// LogLevel returns the configured log level. Verbose forces debug; an
// unrecognized level falls back to warn.
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
