// Package snowflake provides the Snowflake SQL dialect definition.
// This package is pure Go with no database driver dependencies,
// making it suitable for tools that need dialect information
// without the overhead of database connections.
package snowflake

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/dialects/ansi"
	"github.com/leapstack-labs/termsql/pkg/sqlfrag"
	"github.com/leapstack-labs/termsql/pkg/term"
)

func init() {
	Snowflake.SetOperatorRenderer("rlike", term.RendererFunc(renderRlike))
	dialect.Register(Snowflake)
}

func typeRenderers() map[core.StandardType]dialect.TypeRenderer {
	r := ansi.TypeRenderers()
	r[core.TypeNumeric] = dialect.WithPrecision("number", 38, 0)
	r[core.TypeDecimal] = dialect.WithPrecision("number", 38, 0)
	r[core.TypeDouble] = dialect.Fixed("float")
	r[core.TypeClob] = dialect.Fixed("string")
	r[core.TypeNClob] = dialect.Fixed("string")
	r[core.TypeLongVarchar] = dialect.Fixed("string")
	r[core.TypeBlob] = dialect.Fixed("binary")
	r[core.TypeVarBinary] = dialect.Fixed("binary")
	r[core.TypeTimestamp] = dialect.Fixed("timestamp_ntz")
	r[core.TypeTimestampWithTimezone] = dialect.Fixed("timestamp_tz")
	r[core.TypeOther] = dialect.Fixed("variant")
	return r
}

// renderRlike renders "RLIKE(col, p)", Snowflake's anchored regex match.
func renderRlike(prefix string, t *term.Term, col *core.Column, alias string) *sqlfrag.Fragment {
	name := t.Column
	if col != nil && col.Name != "" {
		name = col.Name
	}
	return sqlfrag.New("RLIKE(", Snowflake.BuildColumnName(alias, name), ", ", t.Placeholder(prefix), ")")
}

// Snowflake is the Snowflake SQL dialect.
// Builder reads Config flags and auto-wires standard features:
// - ILIKE / NOT ILIKE operators (SupportsIlike)
// - col REGEXP p for the reg operator (Regexp)
var Snowflake = dialect.New(Config).
	QuotedColumns().
	TypeRenderers(typeRenderers()).
	DefaultTypeRenderer(dialect.WithLength("varchar", 16777216)).
	Build()
