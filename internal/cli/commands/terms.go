package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/sqlfrag"
	"github.com/leapstack-labs/termsql/pkg/term"
)

// termSpec is one condition as written in a terms file or assembled from flags.
//
//	- column: age
//	  op: btw
//	  value: [18, 30]
//	- column: name
//	  op: like
//	  value: ann
//	  options: [startWith]
//	- kind: sql
//	  sql: u.deleted_at IS NULL
type termSpec struct {
	Prefix  string   `yaml:"prefix"`
	Kind    string   `yaml:"kind"`
	Column  string   `yaml:"column"`
	Op      string   `yaml:"op"`
	Value   any      `yaml:"value"`
	Options []string `yaml:"options"`
	SQL     string   `yaml:"sql"`
	Param   any      `yaml:"param"`
}

// toTerm builds the term. An empty operator means eq.
func (s termSpec) toTerm() (*term.Term, error) {
	kind, err := term.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	if kind == term.KindSQL {
		if s.SQL == "" && s.Column == "" {
			return nil, errors.New("sql term has no sql text")
		}
		t := term.Literal(s.SQL, s.Param)
		t.Column = s.Column
		return t, nil
	}
	if s.Column == "" {
		return nil, errors.New("term has no column")
	}

	opts, err := term.ParseOptions(s.Options...)
	if err != nil {
		return nil, err
	}
	op := strings.ToLower(strings.TrimSpace(s.Op))
	if op == "" {
		op = "eq"
	}
	t := term.New(s.Column, op, s.Value, opts)
	t.Kind = kind
	return t, nil
}

// readTermFile decodes a YAML list of terms. "-" reads stdin.
func readTermFile(path string, stdin io.Reader) ([]termSpec, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // user-supplied terms file
		if err != nil {
			return nil, fmt.Errorf("failed to open terms file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var specs []termSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&specs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse terms file %s: %w", path, err)
	}
	return specs, nil
}

// parseValue turns a command-line value into a term value. List operators
// split on commas; numbers stay strings so the database coerces them.
func parseValue(d *dialect.Dialect, op, raw string) any {
	if o, ok := d.LookupOperator(strings.ToLower(op)); ok && o.Arrays {
		parts := strings.Split(raw, ",")
		items := make([]any, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				items = append(items, p)
			}
		}
		return items
	}
	return raw
}

// compiledTerm is the printable result of compiling one term.
type compiledTerm struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Term   string `json:"term" yaml:"term"`
	SQL    string `json:"sql" yaml:"sql"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// compilation is a set of compiled terms and the bindings for their placeholders.
type compilation struct {
	Terms    []compiledTerm
	Bindings *term.Bindings
}

// Where joins the non-empty fragments with AND.
func (c *compilation) Where() string {
	var parts []string
	for _, ct := range c.Terms {
		if ct.SQL != "" {
			parts = append(parts, ct.SQL)
		}
	}
	return strings.Join(parts, " AND ")
}

// compileTerms compiles specs against d. When table is set every non-sql
// term must name one of its columns. Prefixes default to p0, p1, ...
func compileTerms(d *dialect.Dialect, specs []termSpec, table *core.Table, alias string) (*compilation, error) {
	out := &compilation{Bindings: term.NewBindings()}
	out.Bindings.FormatLike = true

	for i, s := range specs {
		t, err := s.toTerm()
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i+1, err)
		}

		var col *core.Column
		if table != nil && t.Kind != term.KindSQL {
			c, ok := table.Column(t.Column)
			if !ok {
				return nil, fmt.Errorf("term %d: unknown column %q in %s", i+1, t.Column, table.QualifiedName())
			}
			col = c
		}

		prefix := s.Prefix
		if prefix == "" {
			prefix = "p" + strconv.Itoa(i)
		}

		frag, value := d.CompileCondition(prefix, t, col, alias)
		out.Bindings.Add(prefix, t)
		out.Terms = append(out.Terms, compiledTerm{
			Prefix: prefix,
			Term:   t.String(),
			SQL:    frag.String(),
			Value:  value.Interface(),
		})
	}
	return out, nil
}

// bind resolves the placeholders in sql into positional parameters.
func bind(d *dialect.Dialect, sql string, b *term.Bindings) (string, []any, error) {
	return sqlfrag.Bind(sql, d.Placeholder, b.Lookup)
}

// termFlags are the command-line flags describing terms to compile.
type termFlags struct {
	File    string
	Column  string
	Op      string
	Value   string
	Options []string
	Kind    string
	Prefix  string
	SQL     string
}

func (f *termFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.File, "file", "f", "", "YAML file with a list of terms (- for stdin)")
	cmd.Flags().StringVar(&f.Column, "column", "", "Column name")
	cmd.Flags().StringVar(&f.Op, "op", "eq", "Operator token (eq, like, in, btw, ...)")
	cmd.Flags().StringVar(&f.Value, "value", "", "Value; comma separated for list operators")
	cmd.Flags().StringSliceVar(&f.Options, "option", nil, "Term options (reverse, startWith, endWith)")
	cmd.Flags().StringVar(&f.Kind, "kind", "", "Term kind (field, bound, sql)")
	cmd.Flags().StringVar(&f.Prefix, "prefix", "", "Placeholder prefix (default p0)")
	cmd.Flags().StringVar(&f.SQL, "sql", "", "Literal SQL for --kind sql")
}

// specs returns the terms named by the flags, or nil when none were given.
func (f *termFlags) specs(cmd *cobra.Command, d *dialect.Dialect) ([]termSpec, error) {
	if f.File != "" {
		return readTermFile(f.File, cmd.InOrStdin())
	}
	if f.Column == "" && f.SQL == "" {
		return nil, nil
	}

	spec := termSpec{
		Prefix:  f.Prefix,
		Kind:    f.Kind,
		Column:  f.Column,
		Op:      f.Op,
		Options: f.Options,
		SQL:     f.SQL,
	}
	if f.SQL != "" && f.Kind == "" {
		spec.Kind = term.KindSQL.String()
	}
	if cmd.Flags().Changed("value") {
		spec.Value = parseValue(d, f.Op, f.Value)
	}
	return []termSpec{spec}, nil
}
