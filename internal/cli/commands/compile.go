package commands

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// CompileOptions holds options for the compile command.
type CompileOptions struct {
	termFlags
	Alias string
	Bind  bool
}

type compileOutput struct {
	Terms []compiledTerm `json:"terms" yaml:"terms"`
	Where string         `json:"where" yaml:"where"`
	Bound string         `json:"bound,omitempty" yaml:"bound,omitempty"`
	Args  []any          `json:"args,omitempty" yaml:"args,omitempty"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	opts := &CompileOptions{}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile terms into a SQL condition",
		Long: `Compile one or more dialect-neutral terms into SQL condition fragments
for the selected dialect.

A single term can be given with flags; a list of terms is read from a YAML
file with --file (use "-" for stdin). Fragments are joined with AND.`,
		Example: `  # A single comparison
  termsql compile --column age --op gte --value 18

  # Prefix match, rendered for DuckDB
  termsql compile -d duckdb --column name --op ilike --value ann --option startWith

  # A list of terms, with bound positional parameters
  termsql compile --file terms.yaml --alias u --bind`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompile(cmd, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.Alias, "alias", "", "Table alias")
	cmd.Flags().BoolVar(&opts.Bind, "bind", false, "Also bind placeholders to positional parameters")

	return cmd
}

func runCompile(cmd *cobra.Command, opts *CompileOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	specs, err := opts.specs(cmd, cc.Dialect)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return errors.New("nothing to compile: pass --column, --sql or --file")
	}

	comp, err := compileTerms(cc.Dialect, specs, nil, opts.Alias)
	if err != nil {
		return err
	}
	cc.Logger.Debug("compiled terms", "dialect", cc.Dialect.Name, "count", len(comp.Terms))

	out := compileOutput{Terms: comp.Terms, Where: comp.Where()}
	if opts.Bind {
		out.Bound, out.Args, err = bind(cc.Dialect, out.Where, comp.Bindings)
		if err != nil {
			return err
		}
	}

	if err := cc.Render(out, func(t table.Writer) {
		t.AppendHeader(table.Row{"Prefix", "Term", "SQL"})
		for _, ct := range out.Terms {
			t.AppendRow(table.Row{ct.Prefix, ct.Term, ct.SQL})
		}
	}); err != nil {
		return err
	}

	if cc.Cfg.Output == formatTable {
		_, _ = fmt.Fprintf(cc.Out, "WHERE %s\n", out.Where)
		if opts.Bind {
			_, _ = fmt.Fprintf(cc.Out, "Bound: %s\n", out.Bound)
			_, _ = fmt.Fprintf(cc.Out, "Args:  %v\n", out.Args)
		}
	}
	return nil
}
