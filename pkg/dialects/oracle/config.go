// Package oracle provides the Oracle SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package oracle

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the Oracle dialect configuration.
var Config = &core.DialectConfig{
	Name:        "oracle",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase,
	},
	Paging: core.PagingRownum,
	Concat: core.ConcatPipes,

	// Framework Features (auto-wired by Builder)
	Regexp:         core.RegexpLikeFunc,
	BitandFunction: true,

	TypeOverrides: map[string]core.StandardType{
		"varchar2":      core.TypeVarchar,
		"nvarchar2":     core.TypeNVarchar,
		"number":        core.TypeNumeric,
		"long":          core.TypeLongVarchar,
		"raw":           core.TypeVarBinary,
		"long raw":      core.TypeLongVarBinary,
		"binary_float":  core.TypeFloat,
		"binary_double": core.TypeDouble,
		"xmltype":       core.TypeSQLXML,
		"urowid":        core.TypeRowID,
		"bfile":         core.TypeBlob,
	},
	DataTypes: []string{
		"NUMBER", "BINARY_FLOAT", "BINARY_DOUBLE", "CHAR", "VARCHAR2", "NCHAR", "NVARCHAR2",
		"CLOB", "NCLOB", "BLOB", "RAW", "LONG", "DATE", "TIMESTAMP", "ROWID",
	},
}
