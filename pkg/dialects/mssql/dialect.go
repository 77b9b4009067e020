package mssql

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/dialects/ansi"
)

func init() {
	dialect.Register(MSSQL)
}

func typeRenderers() map[core.StandardType]dialect.TypeRenderer {
	r := ansi.TypeRenderers()
	r[core.TypeTinyInt] = dialect.Fixed("tinyint")
	r[core.TypeInteger] = dialect.Fixed("int")
	r[core.TypeDouble] = dialect.Fixed("float")
	r[core.TypeBoolean] = dialect.Fixed("bit")
	r[core.TypeVarchar] = dialect.WithLength("nvarchar", 255)
	r[core.TypeLongVarchar] = dialect.Fixed("nvarchar(max)")
	r[core.TypeLongNVarchar] = dialect.Fixed("nvarchar(max)")
	r[core.TypeClob] = dialect.Fixed("nvarchar(max)")
	r[core.TypeNClob] = dialect.Fixed("nvarchar(max)")
	r[core.TypeBlob] = dialect.Fixed("varbinary(max)")
	r[core.TypeLongVarBinary] = dialect.Fixed("varbinary(max)")
	r[core.TypeTimestamp] = dialect.Fixed("datetime2")
	r[core.TypeTimestampWithTimezone] = dialect.Fixed("datetimeoffset")
	r[core.TypeTimeWithTimezone] = dialect.Fixed("time")
	r[core.TypeSQLXML] = dialect.Fixed("xml")
	return r
}

// MSSQL is the SQL Server dialect.
// Builder reads Config flags and auto-wires standard features:
// - OFFSET/FETCH paging (Paging)
// - a+b concatenation (Concat)
var MSSQL = dialect.New(Config).
	QuotedColumns().
	TypeRenderers(typeRenderers()).
	DefaultTypeRenderer(dialect.WithLength("nvarchar", 255)).
	Build()
