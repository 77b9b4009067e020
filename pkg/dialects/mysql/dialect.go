package mysql

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/dialects/ansi"
)

func init() {
	dialect.Register(MySQL)
}

func typeRenderers() map[core.StandardType]dialect.TypeRenderer {
	r := ansi.TypeRenderers()
	r[core.TypeTinyInt] = dialect.Fixed("tinyint")
	r[core.TypeInteger] = dialect.Fixed("int")
	r[core.TypeDouble] = dialect.Fixed("double")
	r[core.TypeBit] = dialect.Fixed("bit(1)")
	r[core.TypeBoolean] = dialect.Fixed("tinyint(1)")
	r[core.TypeLongVarchar] = dialect.Fixed("text")
	r[core.TypeClob] = dialect.Fixed("longtext")
	r[core.TypeNClob] = dialect.Fixed("longtext")
	r[core.TypeBlob] = dialect.Fixed("longblob")
	r[core.TypeLongVarBinary] = dialect.Fixed("longblob")
	r[core.TypeTimestamp] = dialect.Fixed("datetime")
	r[core.TypeTimestampWithTimezone] = dialect.Fixed("timestamp")
	r[core.TypeTimeWithTimezone] = dialect.Fixed("time")
	return r
}

// MySQL is the MySQL dialect.
// Builder reads Config flags and auto-wires standard features:
// - LIMIT offset,size paging (Paging)
// - concat(a, b) (Concat)
// - col REGEXP p for the reg operator (Regexp)
var MySQL = dialect.New(Config).
	QuotedColumns().
	TypeRenderers(typeRenderers()).
	DefaultTypeRenderer(dialect.WithLength("varchar", 255)).
	Build()
