package main

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/term"
)

// termsExample is the terms file shown on the reference page.
const termsExample = `- column: age
  op: btw
  value: [18, 30]
- column: name
  op: like
  value: ann
  options: [startWith]
- kind: sql
  sql: deleted_at IS NULL`

// termsPage documents the term model shared by compile, query and repl:
// kinds, options and every operator with the dialects that support it.
func termsPage() *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("Terms", "Term kinds, options and operators")
	w.GeneratedMarker()

	w.Header(1, "Terms")
	w.Paragraph("A term is a column, an operator token, a value and optional flags. " +
		"Commands take one term from --column/--op/--value/--option or a YAML list from --file.")
	w.CodeBlock("yaml", termsExample)

	w.Header(2, "Kinds")
	w.Table([]string{"Kind", "Placeholders"}, [][]string{
		{InlineCode(term.KindField.String()), InlineCode("#{p.value}") + ", " + InlineCode("#{p.value[i]}")},
		{InlineCode(term.KindBound.String()), InlineCode("#{p}") + ", " + InlineCode("#{p.value[i]}")},
		{InlineCode(term.KindSQL.String()), "written inside the literal SQL"},
	})

	w.Header(2, "Options")
	var opts []string
	for _, name := range (term.Reverse | term.StartWith | term.EndWith).Names() {
		opts = append(opts, InlineCode(name))
	}
	w.BulletList(opts)

	w.Header(2, "Operators")
	w.Paragraph("Fragments are rendered by the ansi dialect for the column age under alias t. " +
		"Unknown operator tokens fall back to eq.")
	w.Table([]string{"Operator", "Fragment", "Dialects"}, operatorRows(dialect.All()))

	return w
}

// operatorRows lists every operator token registered by any dialect.
func operatorRows(all []*dialect.Dialect) [][]string {
	supported := map[string][]string{}
	for _, d := range all {
		for _, op := range d.Operators() {
			supported[op] = append(supported[op], d.Name)
		}
	}
	tokens := make([]string, 0, len(supported))
	for op := range supported {
		tokens = append(tokens, op)
	}
	sort.Strings(tokens)

	ref, _ := dialect.Get("ansi")
	var rows [][]string
	for _, op := range tokens {
		dialects := "all"
		if len(supported[op]) != len(all) {
			dialects = strings.Join(supported[op], ", ")
		}
		rows = append(rows, []string{InlineCode(op), InlineCode(sampleFragment(ref, all, op)), dialects})
	}
	return rows
}

// sampleFragment compiles "age <op> ..." with ref, or with the first
// dialect that has the operator when ref does not.
func sampleFragment(ref *dialect.Dialect, all []*dialect.Dialect, op string) string {
	d := ref
	if d == nil || !d.SupportsOperator(op) {
		for _, cand := range all {
			if cand.SupportsOperator(op) {
				d = cand
				break
			}
		}
	}
	var value any = 18
	if o, ok := d.LookupOperator(op); ok && o.Arrays {
		value = []any{18, 30}
	}
	f, _ := d.CompileCondition("p", term.New("age", op, value, 0), nil, "t")
	return f.String()
}
