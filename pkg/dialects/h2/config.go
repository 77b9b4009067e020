// Package h2 provides the H2 database dialect definition.
// This package is pure Go with no database driver dependencies.
package h2

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the H2 dialect configuration.
var Config = &core.DialectConfig{
	Name:          "h2",
	DefaultSchema: "PUBLIC",
	Placeholder:   core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase,
	},
	Paging: core.PagingLimitOffset,
	Concat: core.ConcatFunction,
	Regexp: core.RegexpKeyword,

	TypeOverrides: map[string]core.StandardType{
		"int":                    core.TypeInteger,
		"int4":                   core.TypeInteger,
		"int8":                   core.TypeBigInt,
		"bool":                   core.TypeBoolean,
		"character varying":      core.TypeVarchar,
		"varchar_ignorecase":     core.TypeVarchar,
		"double precision":       core.TypeDouble,
		"character large object": core.TypeClob,
		"binary large object":    core.TypeBlob,
		"uuid":                   core.TypeVarchar,
	},
	DataTypes: []string{
		"TINYINT", "SMALLINT", "INTEGER", "BIGINT", "DECIMAL", "REAL", "DOUBLE PRECISION",
		"BOOLEAN", "CHAR", "VARCHAR", "VARCHAR_IGNORECASE", "CLOB", "BLOB", "UUID",
		"DATE", "TIME", "TIMESTAMP",
	},
}
