package term

import (
	"sort"
	"strconv"
	"strings"
)

// Bindings resolves the named placeholders produced by compiled terms.
// Terms are registered under the prefix they were compiled with.
type Bindings struct {
	// FormatLike applies LikePattern to scalar values of non-reverse LIKE
	// family terms.
	FormatLike bool

	terms  map[string]*Term
	values map[string]any
}

// NewBindings creates an empty binding set.
func NewBindings() *Bindings {
	return &Bindings{
		terms:  make(map[string]*Term),
		values: make(map[string]any),
	}
}

// Add registers a term under prefix.
func (b *Bindings) Add(prefix string, t *Term) *Bindings {
	b.terms[prefix] = t
	return b
}

// Set binds a plain value to an exact placeholder name.
func (b *Bindings) Set(name string, v any) *Bindings {
	b.values[name] = v
	return b
}

// SetAll binds every entry of m.
func (b *Bindings) SetAll(m map[string]any) *Bindings {
	for k, v := range m {
		b.values[k] = v
	}
	return b
}

// Prefixes returns the registered term prefixes, sorted.
func (b *Bindings) Prefixes() []string {
	out := make([]string, 0, len(b.terms))
	for p := range b.terms {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves prefix, prefix.value, prefix.value[i] and prefix[i].
// Names set with Set take precedence.
func (b *Bindings) Lookup(name string) (any, bool) {
	if v, ok := b.values[name]; ok {
		return v, true
	}

	base, index, hasIndex := splitIndex(name)
	prefix := strings.TrimSuffix(base, ".value")
	t, ok := b.terms[prefix]
	if !ok {
		return nil, false
	}

	if hasIndex {
		return t.Value.Index(index)
	}

	switch t.Value.Kind() {
	case ValueScalar:
		v := t.Value.Scalar()
		if b.FormatLike && t.IsPattern() && !t.Options.Has(Reverse) {
			v = LikePattern(v, t.Options)
		}
		return v, true
	case ValueList:
		return t.Value.Items(), true
	default:
		return nil, true
	}
}

// splitIndex splits "a.value[3]" into ("a.value", 3, true).
func splitIndex(name string) (string, int, bool) {
	if !strings.HasSuffix(name, "]") {
		return name, 0, false
	}
	open := strings.LastIndexByte(name, '[')
	if open < 0 {
		return name, 0, false
	}
	i, err := strconv.Atoi(name[open+1 : len(name)-1])
	if err != nil {
		return name, 0, false
	}
	return name[:open], i, true
}

// LikePattern anchors a string value for LIKE matching: StartWith gives
// "v%", EndWith gives "%v" and both give "%v%". Non-string values and
// values without anchoring flags are returned unchanged.
func LikePattern(v any, opts Options) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if opts.Has(EndWith) {
		s = "%" + s
	}
	if opts.Has(StartWith) {
		s += "%"
	}
	return s
}
