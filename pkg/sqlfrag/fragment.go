// Package sqlfrag accumulates SQL text fragments and binds the named
// placeholders they contain.
//
// A Fragment is the output of every operator renderer. It is a plain token
// list: renderers append tokens, may drop the last one (a trailing list
// separator), and the caller reads the joined text.
package sqlfrag

import (
	"fmt"
	"strings"
)

// Fragment is a mutable sequence of SQL text tokens.
// The zero value is an empty fragment ready for use.
type Fragment struct {
	tokens []string
}

// New returns a fragment holding the given tokens.
func New(tokens ...any) *Fragment {
	f := &Fragment{}
	return f.Add(tokens...)
}

// Add appends the string form of each token in order.
func (f *Fragment) Add(tokens ...any) *Fragment {
	for _, t := range tokens {
		f.tokens = append(f.tokens, toString(t))
	}
	return f
}

// AddSpaced appends a single space followed by the token.
func (f *Fragment) AddSpaced(token any) *Fragment {
	f.tokens = append(f.tokens, " "+toString(token))
	return f
}

// RemoveLast removes the most recently appended token. It is a no-op on an
// empty fragment.
func (f *Fragment) RemoveLast() *Fragment {
	if n := len(f.tokens); n > 0 {
		f.tokens = f.tokens[:n-1]
	}
	return f
}

// String returns the accumulated SQL text.
func (f *Fragment) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(f.tokens, "")
}

// Len returns the number of tokens.
func (f *Fragment) Len() int {
	if f == nil {
		return 0
	}
	return len(f.tokens)
}

// IsEmpty reports whether the fragment renders to no text.
func (f *Fragment) IsEmpty() bool {
	return f.String() == ""
}

// Tokens returns a copy of the token list.
func (f *Fragment) Tokens() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.tokens))
	copy(out, f.tokens)
	return out
}

func toString(t any) string {
	switch v := t.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
