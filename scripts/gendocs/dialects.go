package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

// generateDialectDocs writes an overview page and one page per registered dialect.
// The dialects are registered by the blank imports of internal/cli.
func generateDialectDocs(outDir string) error {
	log.Printf("Generating dialect docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	all := dialect.All()
	if err := generateDialectIndex(all, outDir); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	log.Printf("  Generated index.md")

	for _, d := range all {
		if err := generateDialectPage(d, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", d.Name, err)
		}
		log.Printf("  Generated %s.md", d.Name)
	}
	return nil
}

func generateDialectIndex(all []*dialect.Dialect, outDir string) error {
	w := NewMarkdownWriter()
	w.Frontmatter("Dialects", "SQL dialects supported by termsql")
	w.GeneratedMarker()

	w.Header(1, "Dialects")
	w.Paragraph("Each dialect renders the same terms with its own identifier quoting, operators, placeholders and paging syntax.")

	headers := []string{"Dialect", "Default schema", "Placeholder", "Paging", "Operators"}
	var rows [][]string
	for _, d := range all {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/dialects/%s)", displayName(d), d.Name),
			d.DefaultSchema,
			d.Placeholder.String(),
			d.Paging.String(),
			fmt.Sprint(len(d.Operators())),
		})
	}
	w.Table(headers, rows)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

func generateDialectPage(d *dialect.Dialect, outDir string) error {
	w := NewMarkdownWriter()
	w.Frontmatter(displayName(d), "The "+d.Name+" dialect")
	w.GeneratedMarker()

	w.Header(1, displayName(d))

	w.Header(2, "Operators")
	ops := make([]string, 0, len(d.Operators()))
	for _, op := range d.Operators() {
		ops = append(ops, InlineCode(op))
	}
	w.Paragraph(strings.Join(ops, ", "))

	w.Header(2, "Functions")
	fns := make([]string, 0, len(d.Functions()))
	for _, fn := range d.Functions() {
		fns = append(fns, InlineCode(fn))
	}
	w.Paragraph(strings.Join(fns, ", "))

	w.Header(2, "Pagination")
	w.CodeBlock("sql", d.PaginateWith("SELECT * FROM t", 2, 10, false))

	w.Header(2, "Types")
	var rows [][]string
	for _, st := range core.StandardTypes() {
		native, err := d.NativeType(&core.Column{Type: st})
		if err != nil {
			return err
		}
		rows = append(rows, []string{InlineCode(st.String()), InlineCode(native)})
	}
	w.Table([]string{"Standard", "Native"}, rows)

	return os.WriteFile(filepath.Join(outDir, d.Name+".md"), w.Bytes(), 0600)
}

func displayName(d *dialect.Dialect) string {
	return cases.Title(language.English).String(d.Name)
}
