package duckdb

import (
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/dialects/ansi"
)

func init() {
	dialect.Register(DuckDB)
}

func typeRenderers() map[core.StandardType]dialect.TypeRenderer {
	r := ansi.TypeRenderers()
	r[core.TypeTinyInt] = dialect.Fixed("tinyint")
	r[core.TypeFloat] = dialect.Fixed("float")
	r[core.TypeDouble] = dialect.Fixed("double")
	r[core.TypeVarchar] = dialect.Fixed("varchar")
	r[core.TypeNVarchar] = dialect.Fixed("varchar")
	r[core.TypeLongVarchar] = dialect.Fixed("varchar")
	r[core.TypeClob] = dialect.Fixed("varchar")
	r[core.TypeNClob] = dialect.Fixed("varchar")
	r[core.TypeBinary] = dialect.Fixed("blob")
	r[core.TypeVarBinary] = dialect.Fixed("blob")
	r[core.TypeLongVarBinary] = dialect.Fixed("blob")
	r[core.TypeTimestampWithTimezone] = dialect.Fixed("timestamptz")
	return r
}

// listConcat renders list_concat(a, b, ...).
var listConcat = dialect.FunctionFunc(func(_ dialect.RenderPhase, args []string) string {
	return "list_concat(" + strings.Join(args, ", ") + ")"
})

// DuckDB is the DuckDB dialect.
// Builder reads Config flags and auto-wires standard features:
// - ILIKE / NOT ILIKE operators (SupportsIlike)
// - regexp_matches(col, p) for the reg operator (Regexp)
var DuckDB = dialect.New(Config).
	QuotedColumns().
	Function("list_concat", listConcat).
	TypeRenderers(typeRenderers()).
	DefaultTypeRenderer(dialect.Fixed("varchar")).
	Build()
