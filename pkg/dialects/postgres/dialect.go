package postgres

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/dialects/ansi"
)

func init() {
	dialect.Register(Postgres)
}

func typeRenderers() map[core.StandardType]dialect.TypeRenderer {
	r := ansi.TypeRenderers()
	r[core.TypeTinyInt] = dialect.Fixed("smallint")
	r[core.TypeBit] = dialect.Fixed("bit")
	r[core.TypeFloat] = dialect.Fixed("real")
	r[core.TypeNVarchar] = dialect.WithLength("varchar", 255)
	r[core.TypeNChar] = dialect.WithLength("char", 1)
	r[core.TypeLongVarchar] = dialect.Fixed("text")
	r[core.TypeLongNVarchar] = dialect.Fixed("text")
	r[core.TypeClob] = dialect.Fixed("text")
	r[core.TypeNClob] = dialect.Fixed("text")
	r[core.TypeBlob] = dialect.Fixed("bytea")
	r[core.TypeBinary] = dialect.Fixed("bytea")
	r[core.TypeVarBinary] = dialect.Fixed("bytea")
	r[core.TypeLongVarBinary] = dialect.Fixed("bytea")
	r[core.TypeSQLXML] = dialect.Fixed("xml")
	r[core.TypeTimestampWithTimezone] = dialect.Fixed("timestamptz")
	r[core.TypeTimeWithTimezone] = dialect.Fixed("timetz")
	return r
}

// Postgres is the PostgreSQL dialect.
// Builder reads Config flags and auto-wires standard features:
// - ILIKE / NOT ILIKE operators (SupportsIlike)
// - col ~ p for the reg operator (Regexp)
var Postgres = dialect.New(Config).
	QuotedColumns().
	TypeRenderers(typeRenderers()).
	DefaultTypeRenderer(dialect.Fixed("varchar")).
	Build()
