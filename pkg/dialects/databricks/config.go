// Package databricks provides the Databricks SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package databricks

import "github.com/leapstack-labs/termsql/pkg/core"

// Config is the Databricks SQL dialect configuration.
// This is pure data - accessible by both Adapter and condition compiler.
var Config = &core.DialectConfig{
	Name:          "databricks",
	DefaultSchema: "default",
	Placeholder:   core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseInsensitive,
	},
	Paging: core.PagingLimitOffset,
	Concat: core.ConcatFunction,

	// Framework Features (auto-wired by Builder)
	SupportsIlike: true,
	Regexp:        core.RegexpKeyword,

	TypeOverrides: map[string]core.StandardType{
		"byte":          core.TypeTinyInt,
		"short":         core.TypeSmallInt,
		"int":           core.TypeInteger,
		"long":          core.TypeBigInt,
		"string":        core.TypeVarchar,
		"timestamp_ntz": core.TypeTimestamp,
		"map":           core.TypeOther,
		"struct":        core.TypeStruct,
	},
	DataTypes: []string{
		"TINYINT", "SMALLINT", "INT", "BIGINT", "DECIMAL", "FLOAT", "DOUBLE", "BOOLEAN",
		"STRING", "BINARY", "DATE", "TIMESTAMP", "TIMESTAMP_NTZ", "ARRAY", "MAP", "STRUCT",
	},
}
