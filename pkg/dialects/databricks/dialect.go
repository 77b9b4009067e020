// Package databricks provides the Databricks SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package databricks

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Databricks)
}

func typeRenderers() map[core.StandardType]dialect.TypeRenderer {
	r := ansi.TypeRenderers()
	r[core.TypeInteger] = dialect.Fixed("int")
	r[core.TypeTinyInt] = dialect.Fixed("tinyint")
	r[core.TypeFloat] = dialect.Fixed("float")
	r[core.TypeReal] = dialect.Fixed("float")
	r[core.TypeDouble] = dialect.Fixed("double")
	r[core.TypeChar] = dialect.Fixed("string")
	r[core.TypeNChar] = dialect.Fixed("string")
	r[core.TypeVarchar] = dialect.Fixed("string")
	r[core.TypeNVarchar] = dialect.Fixed("string")
	r[core.TypeLongVarchar] = dialect.Fixed("string")
	r[core.TypeClob] = dialect.Fixed("string")
	r[core.TypeNClob] = dialect.Fixed("string")
	r[core.TypeBlob] = dialect.Fixed("binary")
	r[core.TypeVarBinary] = dialect.Fixed("binary")
	r[core.TypeLongVarBinary] = dialect.Fixed("binary")
	r[core.TypeTimestampWithTimezone] = dialect.Fixed("timestamp")
	return r
}

// Databricks is the Databricks SQL dialect.
// Builder reads Config flags and auto-wires standard features:
// - ILIKE / NOT ILIKE operators (SupportsIlike)
// - col REGEXP p for the reg operator (Regexp)
var Databricks = dialect.New(Config).
	QuotedColumns().
	TypeRenderers(typeRenderers()).
	DefaultTypeRenderer(dialect.Fixed("string")).
	Build()
