package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/termsql/pkg/dialect"
)

type dialectInfo struct {
	Name          string   `json:"name" yaml:"name"`
	Title         string   `json:"title" yaml:"title"`
	DefaultSchema string   `json:"default_schema" yaml:"default_schema"`
	Placeholder   string   `json:"placeholder" yaml:"placeholder"`
	Paging        string   `json:"paging" yaml:"paging"`
	Operators     []string `json:"operators" yaml:"operators"`
	Functions     []string `json:"functions" yaml:"functions"`
	DataTypes     []string `json:"data_types,omitempty" yaml:"data_types,omitempty"`
}

func describeDialect(d *dialect.Dialect) dialectInfo {
	return dialectInfo{
		Name:          d.Name,
		Title:         cases.Title(language.English).String(d.Name),
		DefaultSchema: d.DefaultSchema,
		Placeholder:   d.Placeholder.String(),
		Paging:        d.Paging.String(),
		Operators:     d.Operators(),
		Functions:     d.Functions(),
		DataTypes:     d.DataTypes(),
	}
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List registered SQL dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			all := dialect.All()
			out := make([]dialectInfo, len(all))
			for i, d := range all {
				out[i] = describeDialect(d)
			}

			return cc.Render(out, func(t table.Writer) {
				t.AppendHeader(table.Row{"Name", "Dialect", "Schema", "Placeholder", "Paging", "Operators"})
				for _, info := range out {
					name := info.Name
					if name == cc.Dialect.Name {
						name += " *"
					}
					t.AppendRow(table.Row{
						name, info.Title, info.DefaultSchema, info.Placeholder, info.Paging, len(info.Operators),
					})
				}
			})
		},
	}

	cmd.AddCommand(newDialectsShowCommand())
	return cmd
}

func newDialectsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [NAME]",
		Short: "Show the operators, functions and types of a dialect",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			d := cc.Dialect
			if len(args) == 1 {
				if d, err = dialect.Lookup(args[0]); err != nil {
					return err
				}
			}

			info := describeDialect(d)
			return cc.Render(info, func(t table.Writer) {
				t.SetTitle(info.Title)
				t.AppendRows([]table.Row{
					{"Default schema", info.DefaultSchema},
					{"Placeholder", info.Placeholder},
					{"Paging", info.Paging},
					{"Operators", strings.Join(info.Operators, ", ")},
					{"Functions", strings.Join(info.Functions, ", ")},
					{"Data types", strings.Join(info.DataTypes, ", ")},
				})
			})
		},
	}
}
