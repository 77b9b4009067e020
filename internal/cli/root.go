// Package cli provides the command-line interface for termsql.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/termsql/internal/cli/commands"
	"github.com/leapstack-labs/termsql/internal/config"
	"github.com/leapstack-labs/termsql/pkg/dialect"

	// Register the built-in dialects and adapters.
	_ "github.com/leapstack-labs/termsql/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/termsql/pkg/adapters/mysql"
	_ "github.com/leapstack-labs/termsql/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/termsql/pkg/adapters/sqlite"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/databricks"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/h2"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/oracle"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/termsql/pkg/dialects/sqlite"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "termsql",
		Short: "termsql - dialect-neutral SQL conditions",
		Long: `termsql compiles dialect-neutral query terms (column, operator, value,
options) into SQL condition fragments for a family of SQL dialects, maps
native column types to a standard type set, and paginates statements.

With a target configured it introspects live tables and runs compiled,
paginated queries against them.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel()}))
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}
			if err := config.Apply(cfg, logger); err != nil {
				return err
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./termsql.yaml)")
	rootCmd.PersistentFlags().StringP("dialect", "d", "", "SQL dialect (default: ansi)")
	rootCmd.PersistentFlags().Bool("prepared-paging", false, "Render page bounds as placeholders")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewCompileCommand())
	rootCmd.AddCommand(commands.NewPaginateCommand())
	rootCmd.AddCommand(commands.NewTypesCommand())
	rootCmd.AddCommand(commands.NewQueryCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for termsql.

To load completions:

Bash:
  $ source <(termsql completion bash)

Zsh:
  $ termsql completion zsh > "${fpath[1]}/_termsql"

Fish:
  $ termsql completion fish | source

PowerShell:
  PS> termsql completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
