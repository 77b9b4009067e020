package sqlite

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

func init() {
	dialect.Register(SQLite)
}

var typeRenderers = map[core.StandardType]dialect.TypeRenderer{
	core.TypeBit:       dialect.Fixed("integer"),
	core.TypeBoolean:   dialect.Fixed("integer"),
	core.TypeTinyInt:   dialect.Fixed("integer"),
	core.TypeSmallInt:  dialect.Fixed("integer"),
	core.TypeInteger:   dialect.Fixed("integer"),
	core.TypeBigInt:    dialect.Fixed("integer"),
	core.TypeFloat:     dialect.Fixed("real"),
	core.TypeReal:      dialect.Fixed("real"),
	core.TypeDouble:    dialect.Fixed("real"),
	core.TypeNumeric:   dialect.Fixed("numeric"),
	core.TypeDecimal:   dialect.Fixed("numeric"),
	core.TypeBlob:      dialect.Fixed("blob"),
	core.TypeBinary:    dialect.Fixed("blob"),
	core.TypeVarBinary: dialect.Fixed("blob"),
}

// SQLite is the SQLite dialect. Anything without a specific renderer is
// stored as text.
var SQLite = dialect.New(Config).
	QuotedColumns().
	TypeRenderers(typeRenderers).
	DefaultTypeRenderer(dialect.Fixed("text")).
	Build()
