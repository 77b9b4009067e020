package dialect

import (
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/sqlfrag"
	"github.com/leapstack-labs/termsql/pkg/term"
)

// Operator is a registered operator renderer. Arrays marks renderers that
// take a list value; all others receive at most a scalar.
type Operator struct {
	Renderer term.Renderer
	Arrays   bool
}

// Render normalizes the term value for the operator's capability, writes it
// back to the term, and renders. Array-supporting operators coerce the value
// to a list; scalar-only operators flatten a list to its first element.
func (op Operator) Render(prefix string, t *term.Term, col *core.Column, alias string) *sqlfrag.Fragment {
	if op.Arrays {
		t.Value = t.Value.AsList()
	} else {
		t.Value = t.Value.First()
	}
	return op.Renderer.Render(prefix, t, col, alias)
}

// SetOperatorRenderer installs a scalar-only renderer under the lower-cased
// token. A nil renderer removes the token.
func (d *Dialect) SetOperatorRenderer(token string, r term.Renderer) {
	d.setOperator(token, Operator{Renderer: r})
}

// SetListOperatorRenderer installs an array-supporting renderer under the
// lower-cased token. A nil renderer removes the token.
func (d *Dialect) SetListOperatorRenderer(token string, r term.Renderer) {
	d.setOperator(token, Operator{Renderer: r, Arrays: true})
}

func (d *Dialect) setOperator(token string, op Operator) {
	key := strings.ToLower(token)
	if op.Renderer == nil {
		delete(d.operators, key)
		return
	}
	d.operators[key] = op
}

// SupportsOperator reports whether token is registered. The token is
// matched as given.
func (d *Dialect) SupportsOperator(token string) bool {
	_, ok := d.operators[token]
	return ok
}

// LookupOperator returns the operator registered under token, matched as given.
func (d *Dialect) LookupOperator(token string) (Operator, bool) {
	op, ok := d.operators[token]
	return op, ok
}

// Operators returns the registered operator tokens (sorted).
func (d *Dialect) Operators() []string {
	return sortedKeys(d.operators)
}

// --- Baseline operators ---

func (d *Dialect) installBaselineOperators() {
	d.SetOperatorRenderer("eq", d.compareRenderer("="))
	d.SetOperatorRenderer("not", d.compareRenderer("!="))
	d.SetOperatorRenderer("gt", d.compareRenderer(">"))
	d.SetOperatorRenderer("lt", d.compareRenderer("<"))
	d.SetOperatorRenderer("gte", d.compareRenderer(">="))
	d.SetOperatorRenderer("lte", d.compareRenderer("<="))
	d.SetOperatorRenderer("empty", d.constRenderer("=''"))
	d.SetOperatorRenderer("nempty", d.constRenderer("!=''"))
	d.SetOperatorRenderer("isnull", d.constRenderer(" IS NULL"))
	d.SetOperatorRenderer("notnull", d.constRenderer(" IS NOT NULL"))
	d.SetOperatorRenderer("like", d.likeRenderer("LIKE"))
	d.SetOperatorRenderer("nlike", d.likeRenderer("NOT LIKE"))
	d.SetListOperatorRenderer("btw", d.betweenRenderer("BETWEEN"))
	d.SetListOperatorRenderer("nbtw", d.betweenRenderer("NOT BETWEEN"))
	d.SetListOperatorRenderer("in", d.inRenderer("IN"))
	d.SetListOperatorRenderer("nin", d.inRenderer("NOT IN"))
}

// columnName renders the qualified column for a term. The catalog column
// name wins over the term's field name.
func (d *Dialect) columnName(alias string, col *core.Column, t *term.Term) string {
	name := t.Column
	if col != nil && col.Name != "" {
		name = col.Name
	}
	return d.BuildColumnName(alias, name)
}

func (d *Dialect) compareRenderer(symbol string) term.RendererFunc {
	return func(prefix string, t *term.Term, col *core.Column, alias string) *sqlfrag.Fragment {
		return sqlfrag.New(d.columnName(alias, col, t), symbol, t.Placeholder(prefix))
	}
}

func (d *Dialect) constRenderer(suffix string) term.RendererFunc {
	return func(_ string, t *term.Term, col *core.Column, alias string) *sqlfrag.Fragment {
		return sqlfrag.New(d.columnName(alias, col, t), suffix)
	}
}

// likeRenderer renders "col LIKE p". With Reverse it renders "p LIKE col",
// wrapping col in the owning dialect's concat to add '%' for EndWith
// (leading) and StartWith (trailing). Without concat the column is left bare.
func (d *Dialect) likeRenderer(keyword string) term.RendererFunc {
	return func(prefix string, t *term.Term, col *core.Column, alias string) *sqlfrag.Fragment {
		name := d.columnName(alias, col, t)
		if !t.Options.Has(term.Reverse) {
			return sqlfrag.New(name, " ", keyword, " ", t.Placeholder(prefix))
		}

		startWith, endWith := t.Options.Has(term.StartWith), t.Options.Has(term.EndWith)
		if startWith || endWith {
			if concat, ok := d.ownerOf(col).Function("concat"); ok {
				var args []string
				if endWith {
					args = append(args, "'%'")
				}
				args = append(args, name)
				if startWith {
					args = append(args, "'%'")
				}
				name = concat.Render(PhaseWhere, args)
			}
		}
		return sqlfrag.New(t.Placeholder(prefix), " ", keyword, " ", name)
	}
}

// betweenRenderer duplicates a one-element list to [v, v] on the term
// before rendering two indexed placeholders.
func (d *Dialect) betweenRenderer(keyword string) term.RendererFunc {
	return func(prefix string, t *term.Term, col *core.Column, alias string) *sqlfrag.Fragment {
		if t.Value.Len() == 1 {
			v, _ := t.Value.Index(0)
			t.Value = term.List(v, v)
		}
		return sqlfrag.New(
			d.columnName(alias, col, t), " ", keyword, " ",
			t.IndexedPlaceholder(prefix, 0), " AND ", t.IndexedPlaceholder(prefix, 1),
		)
	}
}

// inRenderer renders one indexed placeholder per list element.
// An empty list renders "IN()".
func (d *Dialect) inRenderer(keyword string) term.RendererFunc {
	return func(prefix string, t *term.Term, col *core.Column, alias string) *sqlfrag.Fragment {
		f := sqlfrag.New(d.columnName(alias, col, t), " ", keyword, "(")
		n := t.Value.Len()
		for i := 0; i < n; i++ {
			f.Add(t.IndexedPlaceholder(prefix, i), ",")
		}
		if n > 0 {
			f.RemoveLast()
		}
		return f.Add(")")
	}
}

// regexpRenderer returns the reg operator renderer for a style, or nil.
func (d *Dialect) regexpRenderer(style core.RegexpStyle) term.Renderer {
	switch style {
	case core.RegexpKeyword:
		return d.infixRenderer(" REGEXP ")
	case core.RegexpTilde:
		return d.infixRenderer(" ~ ")
	case core.RegexpLikeFunc:
		return d.callRenderer("REGEXP_LIKE")
	case core.RegexpMatchesFunc:
		return d.callRenderer("regexp_matches")
	default:
		return nil
	}
}

func (d *Dialect) infixRenderer(op string) term.RendererFunc {
	return func(prefix string, t *term.Term, col *core.Column, alias string) *sqlfrag.Fragment {
		return sqlfrag.New(d.columnName(alias, col, t), op, t.Placeholder(prefix))
	}
}

func (d *Dialect) callRenderer(fn string) term.RendererFunc {
	return func(prefix string, t *term.Term, col *core.Column, alias string) *sqlfrag.Fragment {
		return sqlfrag.New(fn, "(", d.columnName(alias, col, t), ", ", t.Placeholder(prefix), ")")
	}
}
