package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/termsql/pkg/dialect"
)

// PaginateOptions holds options for the paginate command.
type PaginateOptions struct {
	Page int
	Size int
}

type paginateOutput struct {
	Dialect string         `json:"dialect" yaml:"dialect"`
	SQL     string         `json:"sql" yaml:"sql"`
	Params  map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

// NewPaginateCommand creates the paginate command.
func NewPaginateCommand() *cobra.Command {
	opts := &PaginateOptions{}

	cmd := &cobra.Command{
		Use:   "paginate SQL",
		Short: "Wrap a statement in the dialect's pagination syntax",
		Long: `Rewrite a SELECT statement to return one page of rows using the selected
dialect's paging syntax. Pages are zero-based.

With --prepared-paging the bounds are emitted as #{_page.*} placeholders and
their values are printed alongside the statement.`,
		Example: `  termsql paginate "SELECT * FROM users" --page 2 --size 10
  termsql paginate -d oracle "SELECT * FROM users" --prepared-paging`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaginate(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().IntVar(&opts.Page, "page", 0, "Zero-based page index")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "Page size (default from paging.size)")

	return cmd
}

func runPaginate(cmd *cobra.Command, sql string, opts *PaginateOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	size := opts.Size
	if !cmd.Flags().Changed("size") {
		size = cc.Cfg.Paging.Size
	}

	d := cc.Dialect
	out := paginateOutput{
		Dialect: d.Name,
		SQL:     d.Paginate(sql, opts.Page, size),
	}
	if d.PreparedPaging() && size > 0 {
		out.Params = dialect.PageParams(opts.Page, size)
	}

	if cc.Cfg.Output != formatTable {
		return renderStructured(cc.Out, cc.Cfg.Output, out)
	}

	_, _ = fmt.Fprintln(cc.Out, out.SQL)
	names := make([]string, 0, len(out.Params))
	for name := range out.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(cc.Out, "  %s = %v\n", name, out.Params[name])
	}
	return nil
}
