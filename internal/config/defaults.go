package config

// Default configuration values.
const (
	DefaultDialect  = "ansi"
	DefaultOutput   = "table"
	DefaultLogLevel = "warn"
	DefaultPageSize = 20
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "termsql.yaml"
	ConfigFileNameAlt = "termsql.yml"
)

// EnvPrefix prefixes environment overrides: TERMSQL_PAGING_PREPARE -> paging.prepare.
const EnvPrefix = "TERMSQL_"

// Output formats accepted by --output.
var OutputFormats = []string{"table", "json", "yaml"}

func defaults() map[string]any {
	return map[string]any{
		"dialect":        DefaultDialect,
		"output":         DefaultOutput,
		"verbose":        false,
		"paging.prepare": false,
		"paging.size":    DefaultPageSize,
		"log.level":      DefaultLogLevel,
	}
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Dialect: DefaultDialect,
		Output:  DefaultOutput,
		Paging:  PagingConfig{Size: DefaultPageSize},
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}
