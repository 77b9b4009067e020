package dialect

import (
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/sqlfrag"
	"github.com/leapstack-labs/termsql/pkg/term"
)

// CompileCondition renders t against col for the given placeholder prefix
// and table alias. It returns the fragment and the term's value after
// normalization; the normalized value is also written back to t.Value.
//
// Dispatch order: literal SQL terms, terms carrying their own renderer,
// then the operator registry with eq as the fallback for unknown tokens.
func (d *Dialect) CompileCondition(prefix string, t *term.Term, col *core.Column, alias string) (*sqlfrag.Fragment, term.Value) {
	if t == nil {
		return &sqlfrag.Fragment{}, term.None()
	}

	if t.Kind == term.KindSQL {
		return compileLiteral(t), t.Value
	}

	if t.Value.Kind() == term.ValueCustom {
		f := t.Value.Renderer().Render(prefix, t, col, alias)
		if f == nil {
			f = &sqlfrag.Fragment{}
		}
		return f, t.Value
	}

	op, ok := d.operators[t.Operator]
	if !ok {
		op, ok = d.operators["eq"]
		if !ok {
			op = Operator{Renderer: d.compareRenderer("=")}
		}
	}
	f := op.Render(prefix, t, col, alias)
	return f, t.Value
}

// compileLiteral emits the term's SQL text verbatim, falling back to the
// column field. A non-nil Param becomes the term value so placeholders in
// the text can bind to it.
func compileLiteral(t *term.Term) *sqlfrag.Fragment {
	text := t.SQL
	if text == "" {
		text = t.Column
	}
	if text == "" {
		return &sqlfrag.Fragment{}
	}
	if t.Param != nil {
		t.Value = term.ValueOf(t.Param)
	}
	return sqlfrag.New(text)
}
