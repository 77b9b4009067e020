// Package mssql provides the Microsoft SQL Server dialect definition.
// This package is pure Go with no database driver dependencies.
package mssql

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the SQL Server dialect configuration.
var Config = &core.DialectConfig{
	Name:          "mssql",
	DefaultSchema: "dbo",
	Placeholder:   core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         "[",
		QuoteEnd:      "]",
		Escape:        "]]",
		Normalization: core.NormCaseInsensitive,
	},
	Paging: core.PagingOffsetFetch,
	Concat: core.ConcatPlus,

	TypeOverrides: map[string]core.StandardType{
		"int":              core.TypeInteger,
		"datetime":         core.TypeTimestamp,
		"datetime2":        core.TypeTimestamp,
		"smalldatetime":    core.TypeTimestamp,
		"datetimeoffset":   core.TypeTimestampWithTimezone,
		"uniqueidentifier": core.TypeVarchar,
		"text":             core.TypeLongVarchar,
		"ntext":            core.TypeLongNVarchar,
		"image":            core.TypeLongVarBinary,
		"money":            core.TypeDecimal,
		"smallmoney":       core.TypeDecimal,
		"xml":              core.TypeSQLXML,
	},
	DataTypes: []string{
		"TINYINT", "SMALLINT", "INT", "BIGINT", "DECIMAL", "NUMERIC", "MONEY", "FLOAT", "REAL",
		"BIT", "CHAR", "VARCHAR", "NCHAR", "NVARCHAR", "VARBINARY", "DATE", "TIME",
		"DATETIME", "DATETIME2", "DATETIMEOFFSET", "UNIQUEIDENTIFIER", "XML",
	},
}
