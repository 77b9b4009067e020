package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/termsql/pkg/adapter"
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

// QueryOptions holds options for the query command.
type QueryOptions struct {
	termFlags
	Table   string
	Alias   string
	Select  string
	OrderBy string
	Page    int
	Size    int
	Explain bool
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a compiled, paginated query against the target",
		Long: `Introspect a table on the configured target, compile the given terms against
its columns, paginate the statement and print one page of rows.

The target's adapter decides the dialect; --dialect is ignored here.`,
		Example: `  # First page of users whose name starts with "ann"
  termsql query --table users --column name --op like --value ann --option startWith

  # Terms from a file, second page of 10
  termsql query --table public.orders --file terms.yaml --page 1 --size 10

  # Show the bound statement without running it
  termsql query --table users --file terms.yaml --explain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.Table, "table", "t", "", "Table to query (schema.name or name)")
	cmd.Flags().StringVar(&opts.Alias, "alias", "t", "Table alias used in the statement")
	cmd.Flags().StringVar(&opts.Select, "select", "*", "Select list")
	cmd.Flags().StringVar(&opts.OrderBy, "order-by", "", "ORDER BY expression")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "Zero-based page index")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "Page size (default from paging.size)")
	cmd.Flags().BoolVar(&opts.Explain, "explain", false, "Print the bound statement instead of running it")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func runQuery(cmd *cobra.Command, opts *QueryOptions) error {
	ctx := cmd.Context()
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	a, err := cc.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	// Every column comes from the adapter's own database, so the dialect is
	// its own owner and no catalog is attached to the shared instance.
	d := a.Dialect()
	cat, err := adapter.LoadCatalog(ctx, a, databaseName(cc.Cfg.Target.AdapterConfig()), opts.Table)
	if err != nil {
		return err
	}
	tbl := cat.Tables()[0]

	specs, err := opts.specs(cmd, d)
	if err != nil {
		return err
	}
	comp, err := compileTerms(d, specs, tbl, opts.Alias)
	if err != nil {
		return err
	}

	size := opts.Size
	if !cmd.Flags().Changed("size") {
		size = cc.Cfg.Paging.Size
	}
	stmt := buildSelect(d, tbl, opts, comp.Where())
	stmt = d.PaginateWith(stmt, opts.Page, size, true)
	comp.Bindings.SetAll(dialect.PageParams(opts.Page, size))

	bound, args, err := bind(d, stmt, comp.Bindings)
	if err != nil {
		return err
	}
	cc.Logger.Debug("running query", "dialect", d.Name, "sql", bound, "args", args)

	if opts.Explain {
		out := compileOutput{Terms: comp.Terms, Where: comp.Where(), Bound: bound, Args: args}
		if cc.Cfg.Output != formatTable {
			return renderStructured(cc.Out, cc.Cfg.Output, out)
		}
		_, _ = fmt.Fprintln(cc.Out, bound)
		_, _ = fmt.Fprintf(cc.Out, "Args: %v\n", args)
		return nil
	}

	rows, err := a.Query(ctx, bound, args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	return renderResults(cc.Out, rows.Rows, cc.Cfg.Output)
}

// buildSelect renders the unpaginated statement for tbl.
func buildSelect(d *dialect.Dialect, tbl *core.Table, opts *QueryOptions, where string) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(opts.Select)
	b.WriteString(" FROM ")
	if tbl.Schema != "" {
		b.WriteString(d.QuoteIdentifier(tbl.Schema))
		b.WriteString(".")
	}
	b.WriteString(d.QuoteIdentifier(tbl.Name))
	if opts.Alias != "" {
		b.WriteString(" ")
		b.WriteString(opts.Alias)
	}
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if opts.OrderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(opts.OrderBy)
	}
	return b.String()
}

// databaseName names the catalog database for a target.
func databaseName(cfg core.AdapterConfig) string {
	switch {
	case cfg.Database != "":
		return cfg.Database
	case cfg.Path != "":
		return cfg.Path
	default:
		return cfg.Type
	}
}
