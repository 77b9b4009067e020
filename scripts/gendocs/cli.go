package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/termsql/internal/cli"
	"github.com/leapstack-labs/termsql/internal/config"
)

// generateCLIDocs writes the CLI overview and one page per command,
// subcommands included (types parse -> types-parse.md).
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	if err := writePage(outDir, "index", cliIndex(root)); err != nil {
		return err
	}
	if err := writePage(outDir, "terms", termsPage()); err != nil {
		return err
	}

	var walk func(cmd *cobra.Command) error
	walk = func(cmd *cobra.Command) error {
		for _, sub := range documented(cmd) {
			if err := writePage(outDir, pageName(sub), commandPage(sub)); err != nil {
				return fmt.Errorf("failed to generate page for %s: %w", sub.CommandPath(), err)
			}
			if err := walk(sub); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}

func writePage(outDir, name string, w *MarkdownWriter) error {
	if err := os.WriteFile(filepath.Join(outDir, name+".md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated %s.md", name)
	return nil
}

// documented returns the subcommands that get a page.
func documented(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.Hidden || sub.Name() == "help" || strings.HasPrefix(sub.Name(), "__") {
			continue
		}
		out = append(out, sub)
	}
	return out
}

// pageName derives the file name from the command path without the root.
func pageName(cmd *cobra.Command) string {
	parts := strings.Fields(cmd.CommandPath())
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, "-")
}

func cliIndex(root *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for termsql")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/termsql/cmd/termsql@latest")

	w.Header(2, "Commands")
	w.BulletList(commandTree(root, 0))

	w.Header(2, "Global Options")
	writeFlagsTable(w, root.PersistentFlags())

	w.Header(2, "Configuration")
	w.Paragraph(fmt.Sprintf(
		"Settings are read from %s (or %s) in the working directory or a parent, then from %s environment variables, then from flags.",
		InlineCode(config.ConfigFileName), InlineCode(config.ConfigFileNameAlt), InlineCode(config.EnvPrefix+"*")))
	writeConfigTable(w, config.Default())

	return w
}

// commandTree renders the documented commands as nested bullet items.
func commandTree(cmd *cobra.Command, depth int) []string {
	var items []string
	for _, sub := range documented(cmd) {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(strings.TrimPrefix(sub.CommandPath(), "termsql ")), pageName(sub))
		items = append(items, strings.Repeat("  ", depth)+link+": "+cleanDescription(sub.Short))
		items = append(items, commandTree(sub, depth+1)...)
	}
	return items
}

// configKey is one documented configuration setting.
type configKey struct {
	Key   string
	Flag  string
	Usage string
	Value func(*config.Config) string
}

var configKeys = []configKey{
	{"dialect", "--dialect", "Dialect used by compile, paginate, types and repl", func(c *config.Config) string { return c.Dialect }},
	{"output", "--output", "Output format: " + strings.Join(config.OutputFormats, ", "), func(c *config.Config) string { return c.Output }},
	{"paging.prepare", "--prepared-paging", "Emit page bounds as #{_page.*} placeholders", func(c *config.Config) string { return strconv.FormatBool(c.Paging.Prepare) }},
	{"paging.size", "", "Default page size for paginate and query", func(c *config.Config) string { return strconv.Itoa(c.Paging.Size) }},
	{"log.level", "--log-level", "debug, info, warn or error", func(c *config.Config) string { return c.Log.Level }},
	{"target.type", "", "Adapter for query: duckdb, mysql, postgres, sqlite", nil},
	{"types.overrides.<dialect>.<token>", "", "Map a native type token to a standard type", nil},
}

func writeConfigTable(w *MarkdownWriter, defaults *config.Config) {
	var rows [][]string
	for _, k := range configKeys {
		def := ""
		if k.Value != nil {
			def = InlineCode(k.Value(defaults))
		}
		flagName := ""
		if k.Flag != "" {
			flagName = InlineCode(k.Flag)
		}
		rows = append(rows, []string{InlineCode(k.Key), InlineCode(envVar(k.Key)), flagName, def, k.Usage})
	}
	w.Table([]string{"Key", "Environment", "Flag", "Default", "Description"}, rows)
}

// envVar maps a config key to its environment variable: paging.size -> TERMSQL_PAGING_SIZE.
func envVar(key string) string {
	key = strings.ReplaceAll(key, "<dialect>.<token>", "<DIALECT>_<TOKEN>")
	return config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func commandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.CommandPath(), cleanDescription(cmd.Short))
	w.GeneratedMarker()

	w.Header(1, cmd.CommandPath())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	use := cmd.UseLine()
	if cmd.HasAvailableSubCommands() {
		use = cmd.CommandPath() + " <subcommand>"
	}
	w.CodeBlock("bash", use)

	if subs := documented(cmd); len(subs) > 0 {
		w.Header(2, "Subcommands")
		var rows [][]string
		for _, sub := range subs {
			rows = append(rows, []string{fmt.Sprintf("[%s](/cli/%s)", InlineCode(sub.Name()), pageName(sub)), cleanDescription(sub.Short)})
		}
		w.Table([]string{"Subcommand", "Description"}, rows)
	}

	if cmd.HasAvailableLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}
	if takesTerms(cmd) {
		w.Paragraph("Terms are described in the [term reference](/cli/terms).")
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}
	return w
}

// takesTerms reports whether cmd accepts the shared term flags.
func takesTerms(cmd *cobra.Command) bool {
	return cmd.LocalFlags().Lookup("column") != nil && cmd.LocalFlags().Lookup("op") != nil
}

func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		name := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			name += ", " + InlineCode("-"+f.Shorthand)
		}
		def := ""
		if f.DefValue != "" && f.DefValue != "[]" && f.DefValue != "0" && f.DefValue != "false" {
			def = InlineCode(f.DefValue)
		}
		rows = append(rows, []string{name, f.Value.Type(), def, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Flag", "Type", "Default", "Description"}, rows)
}
