// Package term defines the dialect-neutral query condition compiled by
// pkg/dialect: a column, an operator token, a value and option flags.
package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/sqlfrag"
)

// Kind selects how a term is compiled.
type Kind int

const (
	// KindField compares a column; placeholders are #{prefix.value}.
	KindField Kind = iota
	// KindBound compares a column whose value is bound directly under the
	// prefix; placeholders are #{prefix} and #{prefix.value[i]}.
	KindBound
	// KindSQL is a literal SQL condition that bypasses the operator registry.
	KindSQL
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBound:
		return "bound"
	case KindSQL:
		return "sql"
	default:
		return "field"
	}
}

// ParseKind parses a kind name. The empty string is KindField.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "field":
		return KindField, nil
	case "bound":
		return KindBound, nil
	case "sql":
		return KindSQL, nil
	default:
		return KindField, fmt.Errorf("unknown term kind %q", s)
	}
}

// Renderer turns a term into a SQL fragment for one column.
type Renderer interface {
	Render(prefix string, t *Term, col *core.Column, alias string) *sqlfrag.Fragment
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(prefix string, t *Term, col *core.Column, alias string) *sqlfrag.Fragment

// Render calls f.
func (f RendererFunc) Render(prefix string, t *Term, col *core.Column, alias string) *sqlfrag.Fragment {
	return f(prefix, t, col, alias)
}

// Term is one query condition. Terms are owned by the caller; compilation
// may replace Value with its normalized form.
type Term struct {
	Kind     Kind
	Column   string
	Operator string
	Value    Value
	Options  Options

	// SQL and Param are only read for KindSQL terms.
	SQL   string
	Param any
}

// New builds a field-comparison term. The value is classified with ValueOf.
func New(column, operator string, value any, opts Options) *Term {
	return &Term{
		Kind:     KindField,
		Column:   column,
		Operator: operator,
		Value:    ValueOf(value),
		Options:  opts,
	}
}

// Literal builds a literal SQL term. param, when non-nil, is bound to the
// placeholders written inside sql.
func Literal(sql string, param any) *Term {
	return &Term{Kind: KindSQL, SQL: sql, Param: param}
}

// Placeholder returns the scalar placeholder for this term under prefix.
func (t *Term) Placeholder(prefix string) string {
	if t.Kind == KindBound {
		return "#{" + prefix + "}"
	}
	return "#{" + prefix + ".value}"
}

// IndexedPlaceholder returns the placeholder for the i-th list element.
// List elements are always addressed through .value, whatever the kind.
func (t *Term) IndexedPlaceholder(prefix string, i int) string {
	return "#{" + prefix + ".value[" + strconv.Itoa(i) + "]}"
}

// IsPattern reports whether the operator is one of the LIKE family.
func (t *Term) IsPattern() bool {
	switch strings.ToLower(t.Operator) {
	case "like", "nlike", "ilike", "nilike":
		return true
	}
	return false
}

// String renders the term for diagnostics.
func (t *Term) String() string {
	if t.Kind == KindSQL {
		return fmt.Sprintf("sql(%q)", t.SQL)
	}
	return fmt.Sprintf("%s %s %v%s", t.Column, t.Operator, t.Value, t.Options.suffix())
}
