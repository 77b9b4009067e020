package h2

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/dialects/ansi"
)

func init() {
	dialect.Register(H2)
}

func typeRenderers() map[core.StandardType]dialect.TypeRenderer {
	r := ansi.TypeRenderers()
	r[core.TypeTinyInt] = dialect.Fixed("tinyint")
	r[core.TypeDouble] = dialect.Fixed("double")
	r[core.TypeLongVarchar] = dialect.Fixed("clob")
	r[core.TypeLongVarBinary] = dialect.Fixed("blob")
	return r
}

// H2 is the H2 dialect.
var H2 = dialect.New(Config).
	QuotedColumns().
	TypeRenderers(typeRenderers()).
	DefaultTypeRenderer(dialect.WithLength("varchar", 255)).
	Build()
