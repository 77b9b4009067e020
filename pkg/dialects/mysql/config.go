// Package mysql provides the MySQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the MySQL dialect configuration.
// The Builder reads feature flags and auto-wires standard capabilities.
var Config = &core.DialectConfig{
	Name:        "mysql",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseSensitive, // Table names follow the file system on Linux
	},
	Paging: core.PagingLimitComma,
	Concat: core.ConcatFunction,
	Regexp: core.RegexpKeyword,

	TypeOverrides: map[string]core.StandardType{
		"int":          core.TypeInteger,
		"mediumint":    core.TypeInteger,
		"int unsigned": core.TypeBigInt,
		"bool":         core.TypeBoolean,
		"datetime":     core.TypeTimestamp,
		"year":         core.TypeDate,
		"tinytext":     core.TypeVarchar,
		"text":         core.TypeClob,
		"mediumtext":   core.TypeClob,
		"longtext":     core.TypeClob,
		"tinyblob":     core.TypeBlob,
		"mediumblob":   core.TypeBlob,
		"longblob":     core.TypeBlob,
		"enum":         core.TypeVarchar,
		"set":          core.TypeVarchar,
		"json":         core.TypeLongVarchar,
	},
	DataTypes: []string{
		"TINYINT", "SMALLINT", "MEDIUMINT", "INT", "BIGINT", "DECIMAL", "FLOAT", "DOUBLE",
		"CHAR", "VARCHAR", "TEXT", "LONGTEXT", "BLOB", "LONGBLOB", "DATE", "TIME", "DATETIME",
		"TIMESTAMP", "YEAR", "JSON", "ENUM", "SET", "BIT",
	},
}
