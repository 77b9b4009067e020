package sqlfrag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
)

var (
	// ErrUnboundPlaceholder is returned when a placeholder name has no value.
	ErrUnboundPlaceholder = errors.New("unbound placeholder")

	// ErrUnterminatedPlaceholder is returned when "#{" has no closing brace.
	ErrUnterminatedPlaceholder = errors.New("unterminated placeholder")
)

// LookupFunc resolves a placeholder name to its bound value.
type LookupFunc func(name string) (any, bool)

// Placeholders returns the names of all #{...} placeholders in sql, in order
// of appearance. Duplicates are kept.
func Placeholders(sql string) ([]string, error) {
	var names []string
	_, err := scan(sql, func(name string) (string, error) {
		names = append(names, name)
		return "", nil
	})
	return names, err
}

// Bind rewrites every #{name} placeholder in sql to a positional parameter in
// the given style and returns the rewritten statement with its arguments.
// Each occurrence gets its own position, so a name used twice is bound twice.
func Bind(sql string, style core.PlaceholderStyle, lookup LookupFunc) (string, []any, error) {
	var args []any
	out, err := scan(sql, func(name string) (string, error) {
		v, ok := lookup(name)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnboundPlaceholder, name)
		}
		args = append(args, v)
		if style == core.PlaceholderDollar {
			return "$" + strconv.Itoa(len(args)), nil
		}
		return "?", nil
	})
	if err != nil {
		return "", nil, err
	}
	return out, args, nil
}

func scan(sql string, replace func(name string) (string, error)) (string, error) {
	var b strings.Builder
	b.Grow(len(sql))
	rest := sql
	for {
		start := strings.Index(rest, "#{")
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w at offset %d", ErrUnterminatedPlaceholder, len(sql)-len(rest)+start)
		}
		b.WriteString(rest[:start])
		name := strings.TrimSpace(rest[start+2 : start+end])
		repl, err := replace(name)
		if err != nil {
			return "", err
		}
		b.WriteString(repl)
		rest = rest[start+end+1:]
	}
}
