// Package snowflake provides the Snowflake SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package snowflake

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the Snowflake SQL dialect configuration.
// This is pure data - accessible by both Adapter and condition compiler.
// The Builder reads feature flags and auto-wires standard capabilities.
var Config = &core.DialectConfig{
	Name:          "snowflake",
	DefaultSchema: "PUBLIC",
	Placeholder:   core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase, // Snowflake normalizes to uppercase
	},
	Paging: core.PagingLimitOffset,
	Concat: core.ConcatFunction,

	// Framework Features (auto-wired by Builder)
	SupportsIlike: true,
	Regexp:        core.RegexpKeyword,

	TypeOverrides: map[string]core.StandardType{
		"number":        core.TypeNumeric,
		"int":           core.TypeInteger,
		"byteint":       core.TypeTinyInt,
		"float4":        core.TypeFloat,
		"float8":        core.TypeDouble,
		"string":        core.TypeVarchar,
		"text":          core.TypeVarchar,
		"timestamp_ntz": core.TypeTimestamp,
		"timestamp_ltz": core.TypeTimestampWithTimezone,
		"timestamp_tz":  core.TypeTimestampWithTimezone,
		"datetime":      core.TypeTimestamp,
		"variant":       core.TypeOther,
		"object":        core.TypeOther,
		"array":         core.TypeArray,
	},
	DataTypes: []string{
		"NUMBER", "INTEGER", "FLOAT", "VARCHAR", "STRING", "BINARY", "BOOLEAN",
		"DATE", "TIME", "TIMESTAMP_NTZ", "TIMESTAMP_LTZ", "TIMESTAMP_TZ",
		"VARIANT", "OBJECT", "ARRAY",
	},
}
