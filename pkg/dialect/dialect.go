// Package dialect provides the SQL dialect translation engine.
//
// A Dialect owns the per-database registries used to turn dialect-neutral
// terms into SQL text: operator renderers, SQL functions, standard/native
// type mappings and the pagination syntax. Concrete dialects are
// registered from pkg/dialects/*/ packages.
//
// Dialects are configured once through a Builder and the registration hooks,
// then shared read-only. The hooks are not synchronized.
package dialect

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
)

// ColumnNamer renders a column reference for a table alias.
type ColumnNamer func(alias, column string) string

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig

	// Database-specific settings
	DefaultSchema string                // Default schema name ("main" for DuckDB, "public" for Postgres)
	Placeholder   core.PlaceholderStyle // How to format positional parameters
	Paging        core.PagingStyle      // Pagination syntax family

	functions     map[string]SQLFunction
	operators     map[string]Operator
	typeRenderers map[core.StandardType]TypeRenderer
	defaultType   TypeRenderer
	typeOverrides map[string]core.StandardType // Lower-cased native token -> standard type
	dataTypes     []string

	columnNamer    ColumnNamer
	pager          Pager
	preparedPaging bool

	catalog *core.Catalog
	logger  *slog.Logger
}

// Config returns the pure data configuration for this dialect.
func (d *Dialect) Config() *core.DialectConfig {
	return &core.DialectConfig{
		Name:          d.Name,
		Identifiers:   d.Identifiers,
		DefaultSchema: d.DefaultSchema,
		Placeholder:   d.Placeholder,
		Paging:        d.Paging,
		TypeOverrides: d.TypeOverrides(),
		DataTypes:     d.DataTypes(),
	}
}

// GetName returns the dialect name.
// This method allows Dialect to satisfy interfaces that require Name() string.
func (d *Dialect) GetName() string {
	return d.Name
}

// Logger returns the dialect's logger. It is never nil.
func (d *Dialect) Logger() *slog.Logger {
	return d.logger
}

// SetLogger replaces the logger used for recoverable warnings.
// A nil logger discards output.
func (d *Dialect) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d.logger = logger
}

// AttachCatalog sets the catalog used to resolve a column's owning dialect.
func (d *Dialect) AttachCatalog(c *core.Catalog) {
	d.catalog = c
}

// Catalog returns the attached catalog, or nil.
func (d *Dialect) Catalog() *core.Catalog {
	return d.catalog
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormLowercase, core.NormCaseInsensitive:
		return strings.ToLower(name)
	default: // NormCaseSensitive
		return name
	}
}

// DataTypes returns the native type names the dialect advertises.
func (d *Dialect) DataTypes() []string {
	out := make([]string, len(d.dataTypes))
	copy(out, d.dataTypes)
	return out
}

// FormatPlaceholder returns a placeholder for the given parameter index (1-based).
// Returns "?" for PlaceholderQuestion style, "$1", "$2" etc. for PlaceholderDollar style.
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case core.PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	default: // PlaceholderQuestion
		return "?"
	}
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// BuildColumnName renders a column qualified by a table alias. The default
// form is alias.column, or column alone when alias is empty.
func (d *Dialect) BuildColumnName(alias, column string) string {
	if d.columnNamer != nil {
		return d.columnNamer(alias, column)
	}
	return qualify(alias, column)
}

func qualify(alias, column string) string {
	if alias == "" {
		return column
	}
	return alias + "." + column
}

// ownerOf resolves the dialect that owns col via the attached catalog.
// Falls back to d when the column cannot be traced to a registered dialect.
func (d *Dialect) ownerOf(col *core.Column) *Dialect {
	name, ok := d.catalog.DialectOf(col)
	if !ok || strings.EqualFold(name, d.Name) {
		return d
	}
	if owner, ok := Get(name); ok {
		return owner
	}
	return d
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
