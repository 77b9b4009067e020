// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the PostgreSQL dialect configuration.
// This is pure data - accessible by both Adapter and condition compiler.
// The Builder reads feature flags and auto-wires standard capabilities.
var Config = &core.DialectConfig{
	Name:          "postgres",
	DefaultSchema: "public",
	Placeholder:   core.PlaceholderDollar,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormLowercase, // Postgres normalizes unquoted to lowercase
	},
	Paging: core.PagingLimitOffset,
	Concat: core.ConcatFunction,

	// Framework Features (auto-wired by Builder)
	SupportsIlike: true,
	Regexp:        core.RegexpTilde,

	TypeOverrides: map[string]core.StandardType{
		"int":                         core.TypeInteger,
		"int2":                        core.TypeSmallInt,
		"int4":                        core.TypeInteger,
		"int8":                        core.TypeBigInt,
		"smallserial":                 core.TypeSmallInt,
		"serial":                      core.TypeInteger,
		"bigserial":                   core.TypeBigInt,
		"float4":                      core.TypeReal,
		"float8":                      core.TypeDouble,
		"double precision":            core.TypeDouble,
		"money":                       core.TypeDecimal,
		"bool":                        core.TypeBoolean,
		"character":                   core.TypeChar,
		"bpchar":                      core.TypeChar,
		"character varying":           core.TypeVarchar,
		"text":                        core.TypeClob,
		"citext":                      core.TypeClob,
		"bytea":                       core.TypeBlob,
		"json":                        core.TypeLongVarchar,
		"jsonb":                       core.TypeLongVarchar,
		"uuid":                        core.TypeVarchar,
		"timestamp without time zone": core.TypeTimestamp,
		"timestamp with time zone":    core.TypeTimestampWithTimezone,
		"timestamptz":                 core.TypeTimestampWithTimezone,
		"time without time zone":      core.TypeTime,
		"time with time zone":         core.TypeTimeWithTimezone,
		"timetz":                      core.TypeTimeWithTimezone,
	},
	DataTypes: []string{
		"SMALLINT", "INTEGER", "BIGINT", "NUMERIC", "REAL", "DOUBLE PRECISION", "SERIAL",
		"BOOLEAN", "CHAR", "VARCHAR", "TEXT", "BYTEA", "DATE", "TIME", "TIMESTAMP",
		"TIMESTAMPTZ", "INTERVAL", "UUID", "JSON", "JSONB",
	},
}
