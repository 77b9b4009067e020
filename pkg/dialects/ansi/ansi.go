package ansi

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// TypeRenderers are the ANSI native type names. Other dialects start from
// this set and override what they spell differently.
func TypeRenderers() map[core.StandardType]dialect.TypeRenderer {
	return map[core.StandardType]dialect.TypeRenderer{
		core.TypeBit:                   dialect.Fixed("bit"),
		core.TypeTinyInt:               dialect.Fixed("smallint"),
		core.TypeSmallInt:              dialect.Fixed("smallint"),
		core.TypeInteger:               dialect.Fixed("integer"),
		core.TypeBigInt:                dialect.Fixed("bigint"),
		core.TypeFloat:                 dialect.Fixed("float"),
		core.TypeReal:                  dialect.Fixed("real"),
		core.TypeDouble:                dialect.Fixed("double precision"),
		core.TypeNumeric:               dialect.WithPrecision("numeric", 32, 8),
		core.TypeDecimal:               dialect.WithPrecision("decimal", 32, 8),
		core.TypeChar:                  dialect.WithLength("char", 1),
		core.TypeVarchar:               dialect.WithLength("varchar", 255),
		core.TypeNChar:                 dialect.WithLength("nchar", 1),
		core.TypeNVarchar:              dialect.WithLength("nvarchar", 255),
		core.TypeClob:                  dialect.Fixed("clob"),
		core.TypeNClob:                 dialect.Fixed("nclob"),
		core.TypeBlob:                  dialect.Fixed("blob"),
		core.TypeBinary:                dialect.WithLength("binary", 1),
		core.TypeVarBinary:             dialect.WithLength("varbinary", 255),
		core.TypeBoolean:               dialect.Fixed("boolean"),
		core.TypeDate:                  dialect.Fixed("date"),
		core.TypeTime:                  dialect.Fixed("time"),
		core.TypeTimestamp:             dialect.Fixed("timestamp"),
		core.TypeTimeWithTimezone:      dialect.Fixed("time with time zone"),
		core.TypeTimestampWithTimezone: dialect.Fixed("timestamp with time zone"),
	}
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.New(Config).
	TypeRenderers(TypeRenderers()).
	DefaultTypeRenderer(dialect.Lowercase).
	Build()
