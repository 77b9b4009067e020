// Package ansi provides the base ANSI SQL dialect.
//
// This dialect is the default when no dialect is configured. Column
// references are left unquoted and pagination uses LIMIT/OFFSET.
package ansi

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the ANSI dialect configuration.
var Config = &core.DialectConfig{
	Name:        "ansi",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormLowercase,
	},
	Paging: core.PagingLimitOffset,
	Concat: core.ConcatFunction,

	TypeOverrides: map[string]core.StandardType{
		"int":                        core.TypeInteger,
		"character":                  core.TypeChar,
		"character varying":          core.TypeVarchar,
		"char varying":               core.TypeVarchar,
		"national character":         core.TypeNChar,
		"national character varying": core.TypeNVarchar,
		"double precision":           core.TypeDouble,
		"dec":                        core.TypeDecimal,
		"bool":                       core.TypeBoolean,
		"character large object":     core.TypeClob,
		"binary large object":        core.TypeBlob,
		"timestamp with time zone":   core.TypeTimestampWithTimezone,
		"time with time zone":        core.TypeTimeWithTimezone,
	},
	DataTypes: []string{
		"SMALLINT", "INTEGER", "BIGINT", "DECIMAL", "NUMERIC", "REAL", "DOUBLE PRECISION",
		"CHAR", "VARCHAR", "CLOB", "BLOB", "BOOLEAN", "DATE", "TIME", "TIMESTAMP",
	},
}
