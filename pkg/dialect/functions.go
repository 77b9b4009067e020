package dialect

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
)

// RenderPhase identifies the statement clause a function is rendered in.
type RenderPhase int

// Render phases.
const (
	PhaseSelect RenderPhase = iota
	PhaseWhere
	PhaseHaving
	PhaseOrder
	PhaseGroup
	PhaseUpdate
	PhaseInsert
	PhaseDelete
)

var phaseNames = [...]string{"select", "where", "having", "order", "group", "update", "insert", "delete"}

// String returns the phase name.
func (p RenderPhase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("RenderPhase(%d)", int(p))
	}
	return phaseNames[p]
}

// ParsePhase parses a phase name (case-insensitive).
func ParsePhase(s string) (RenderPhase, error) {
	for i, name := range phaseNames {
		if strings.EqualFold(name, s) {
			return RenderPhase(i), nil
		}
	}
	return PhaseSelect, fmt.Errorf("unknown render phase %q", s)
}

// SQLFunction renders a SQL expression from positional argument strings.
type SQLFunction interface {
	Render(phase RenderPhase, args []string) string
}

// FunctionFunc adapts a plain function to SQLFunction.
type FunctionFunc func(phase RenderPhase, args []string) string

// Render calls f.
func (f FunctionFunc) Render(phase RenderPhase, args []string) string {
	return f(phase, args)
}

// Function returns the SQL function registered under name.
func (d *Dialect) Function(name string) (SQLFunction, bool) {
	fn, ok := d.functions[strings.ToLower(name)]
	return fn, ok
}

// InstallFunction registers fn under name and returns whatever was
// registered there before. Re-registration silently replaces.
func (d *Dialect) InstallFunction(name string, fn SQLFunction) (previous SQLFunction, replaced bool) {
	key := strings.ToLower(name)
	previous, replaced = d.functions[key]
	d.functions[key] = fn
	return previous, replaced
}

// Functions returns the installed function names (sorted).
func (d *Dialect) Functions() []string {
	return sortedKeys(d.functions)
}

// RenderFunction renders the named function, reporting whether it exists.
func (d *Dialect) RenderFunction(name string, phase RenderPhase, args ...string) (string, bool) {
	fn, ok := d.Function(name)
	if !ok {
		return "", false
	}
	return fn.Render(phase, args), true
}

// --- Standard functions ---

// Concat returns the concat function for a concatenation style.
func Concat(style core.ConcatStyle) SQLFunction {
	switch style {
	case core.ConcatPipes:
		return joinFunction("", "||", "")
	case core.ConcatPlus:
		return joinFunction("", "+", "")
	default:
		return joinFunction("concat(", ", ", ")")
	}
}

// Coalesce renders coalesce(a, b, ...).
var Coalesce = joinFunction("coalesce(", ", ", ")")

// BitandFunction renders bitand(a, b) (Oracle).
var BitandFunction = joinFunction("bitand(", ", ", ")")

// BitandOperator renders a & b.
var BitandOperator = joinFunction("", " & ", "")

func joinFunction(open, sep, closing string) FunctionFunc {
	return func(_ RenderPhase, args []string) string {
		return open + strings.Join(args, sep) + closing
	}
}
