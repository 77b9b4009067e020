package oracle

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

func init() {
	dialect.Register(Oracle)
}

var typeRenderers = map[core.StandardType]dialect.TypeRenderer{
	core.TypeBit:                   dialect.Fixed("number(1)"),
	core.TypeBoolean:               dialect.Fixed("number(1)"),
	core.TypeTinyInt:               dialect.Fixed("number(3)"),
	core.TypeSmallInt:              dialect.Fixed("number(5)"),
	core.TypeInteger:               dialect.Fixed("number(10)"),
	core.TypeBigInt:                dialect.Fixed("number(19)"),
	core.TypeFloat:                 dialect.Fixed("binary_float"),
	core.TypeReal:                  dialect.Fixed("binary_float"),
	core.TypeDouble:                dialect.Fixed("binary_double"),
	core.TypeNumeric:               dialect.WithPrecision("number", 32, 8),
	core.TypeDecimal:               dialect.WithPrecision("number", 32, 8),
	core.TypeChar:                  dialect.WithLength("char", 1),
	core.TypeNChar:                 dialect.WithLength("nchar", 1),
	core.TypeVarchar:               dialect.WithLength("varchar2", 255),
	core.TypeNVarchar:              dialect.WithLength("nvarchar2", 255),
	core.TypeLongVarchar:           dialect.Fixed("clob"),
	core.TypeClob:                  dialect.Fixed("clob"),
	core.TypeNClob:                 dialect.Fixed("nclob"),
	core.TypeBlob:                  dialect.Fixed("blob"),
	core.TypeVarBinary:             dialect.WithLength("raw", 255),
	core.TypeLongVarBinary:         dialect.Fixed("blob"),
	core.TypeDate:                  dialect.Fixed("date"),
	core.TypeTime:                  dialect.Fixed("date"),
	core.TypeTimestamp:             dialect.Fixed("timestamp"),
	core.TypeTimestampWithTimezone: dialect.Fixed("timestamp with time zone"),
	core.TypeSQLXML:                dialect.Fixed("xmltype"),
}

// Oracle is the Oracle dialect.
// Builder reads Config flags and auto-wires standard features:
// - rownum subquery paging (Paging)
// - a||b concatenation (Concat)
// - REGEXP_LIKE(col, p) for the reg operator (Regexp)
// - bitand(a, b) (BitandFunction)
var Oracle = dialect.New(Config).
	QuotedColumns().
	TypeRenderers(typeRenderers).
	DefaultTypeRenderer(dialect.WithLength("varchar2", 255)).
	Build()
