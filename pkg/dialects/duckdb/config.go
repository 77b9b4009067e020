// Package duckdb provides the DuckDB SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package duckdb

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the DuckDB dialect configuration.
// This is pure data - accessible by both Adapter and condition compiler.
var Config = &core.DialectConfig{
	Name:          "duckdb",
	DefaultSchema: "main",
	Placeholder:   core.PlaceholderDollar,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseInsensitive,
	},
	Paging: core.PagingLimitOffset,
	Concat: core.ConcatFunction,

	// Framework Features (auto-wired by Builder)
	SupportsIlike: true,
	Regexp:        core.RegexpMatchesFunc,

	TypeOverrides: map[string]core.StandardType{
		"int":                      core.TypeInteger,
		"int1":                     core.TypeTinyInt,
		"int2":                     core.TypeSmallInt,
		"int4":                     core.TypeInteger,
		"int8":                     core.TypeBigInt,
		"long":                     core.TypeBigInt,
		"hugeint":                  core.TypeNumeric,
		"utinyint":                 core.TypeSmallInt,
		"usmallint":                core.TypeInteger,
		"uinteger":                 core.TypeBigInt,
		"ubigint":                  core.TypeNumeric,
		"float4":                   core.TypeReal,
		"float8":                   core.TypeDouble,
		"bool":                     core.TypeBoolean,
		"logical":                  core.TypeBoolean,
		"text":                     core.TypeVarchar,
		"string":                   core.TypeVarchar,
		"bpchar":                   core.TypeChar,
		"bytea":                    core.TypeBlob,
		"datetime":                 core.TypeTimestamp,
		"timestamptz":              core.TypeTimestampWithTimezone,
		"timestamp with time zone": core.TypeTimestampWithTimezone,
		"uuid":                     core.TypeVarchar,
		"json":                     core.TypeLongVarchar,
	},
	DataTypes: []string{
		"TINYINT", "SMALLINT", "INTEGER", "BIGINT", "HUGEINT", "DECIMAL", "REAL", "DOUBLE",
		"BOOLEAN", "VARCHAR", "BLOB", "DATE", "TIME", "TIMESTAMP", "TIMESTAMPTZ",
		"INTERVAL", "UUID", "JSON",
	},
}
