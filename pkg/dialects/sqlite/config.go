// Package sqlite provides the SQLite dialect definition.
// This package is pure Go with no database driver dependencies.
package sqlite

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the SQLite dialect configuration.
var Config = &core.DialectConfig{
	Name:          "sqlite",
	DefaultSchema: "main",
	Placeholder:   core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseInsensitive,
	},
	Paging: core.PagingLimitOffset,
	Concat: core.ConcatPipes,

	// SQLite uses type affinity, so most declared names fold onto a few types.
	TypeOverrides: map[string]core.StandardType{
		"int":               core.TypeInteger,
		"mediumint":         core.TypeInteger,
		"int2":              core.TypeSmallInt,
		"int8":              core.TypeBigInt,
		"unsigned big int":  core.TypeBigInt,
		"text":              core.TypeVarchar,
		"character":         core.TypeChar,
		"varying character": core.TypeVarchar,
		"native character":  core.TypeNChar,
		"double precision":  core.TypeDouble,
		"bool":              core.TypeBoolean,
		"datetime":          core.TypeTimestamp,
	},
	DataTypes: []string{"INTEGER", "REAL", "TEXT", "BLOB", "NUMERIC"},
}
