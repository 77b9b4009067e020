package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

// NewTypesCommand creates the types command group.
func NewTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Map between native and standard column types",
		Long: `Resolve native type tokens to standard types, render standard types as
native DDL, and list the standard type set for the selected dialect.`,
	}

	cmd.AddCommand(newTypesParseCommand())
	cmd.AddCommand(newTypesNativeCommand())
	cmd.AddCommand(newTypesListCommand())

	return cmd
}

type parsedType struct {
	Native   string `json:"native" yaml:"native"`
	Standard string `json:"standard" yaml:"standard"`
}

func newTypesParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "parse TOKEN...",
		Short:   "Resolve native type tokens to standard types",
		Example: `  termsql types parse -d postgres "character varying(40)" int8 timestamptz`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			out := make([]parsedType, len(args))
			for i, raw := range args {
				out[i] = parsedType{Native: raw, Standard: cc.Dialect.ParseStandardType(raw).String()}
			}
			return cc.Render(out, func(t table.Writer) {
				t.AppendHeader(table.Row{"Native", "Standard"})
				for _, p := range out {
					t.AppendRow(table.Row{p.Native, p.Standard})
				}
			})
		},
	}
}

// NativeOptions holds the column shape for types native.
type NativeOptions struct {
	Length    int
	Precision int
	Scale     int
	All       bool
}

type nativeType struct {
	Dialect string `json:"dialect" yaml:"dialect"`
	Native  string `json:"native" yaml:"native"`
}

func newTypesNativeCommand() *cobra.Command {
	opts := &NativeOptions{}

	cmd := &cobra.Command{
		Use:   "native STANDARD",
		Short: "Render a standard type as native DDL",
		Example: `  termsql types native VARCHAR --length 40
  termsql types native DECIMAL --precision 10 --scale 2 --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypesNative(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.Length, "length", 0, "Column length")
	cmd.Flags().IntVar(&opts.Precision, "precision", 0, "Numeric precision")
	cmd.Flags().IntVar(&opts.Scale, "scale", 0, "Numeric scale")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Render for every registered dialect")

	return cmd
}

func runTypesNative(cmd *cobra.Command, name string, opts *NativeOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	st, ok := core.LookupStandardType(name)
	if !ok {
		return fmt.Errorf("unknown standard type %q", name)
	}
	col := &core.Column{Type: st, Length: opts.Length, Precision: opts.Precision, Scale: opts.Scale}

	targets := []*dialect.Dialect{cc.Dialect}
	if opts.All {
		targets = dialect.All()
	}

	out := make([]nativeType, 0, len(targets))
	for _, d := range targets {
		native, err := d.NativeType(col)
		if err != nil {
			return err
		}
		out = append(out, nativeType{Dialect: d.Name, Native: native})
	}

	return cc.Render(out, func(t table.Writer) {
		t.AppendHeader(table.Row{"Dialect", st.String()})
		for _, n := range out {
			t.AppendRow(table.Row{n.Dialect, n.Native})
		}
	})
}

func newTypesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List standard types and their native rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			var out []parsedType
			for _, st := range core.StandardTypes() {
				native, err := cc.Dialect.NativeType(&core.Column{Type: st})
				if err != nil {
					return err
				}
				out = append(out, parsedType{Native: native, Standard: st.String()})
			}

			return cc.Render(out, func(t table.Writer) {
				t.AppendHeader(table.Row{"Standard", cc.Dialect.Name})
				for _, p := range out {
					t.AppendRow(table.Row{p.Standard, p.Native})
				}
			})
		},
	}
}
