package dialect

import (
	"log/slog"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/term"
)

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect  *Dialect
	config   *core.DialectConfig // Optional config for auto-wiring features
	pagerSet bool                // Paging or Pager was called explicitly
}

func newDialect(name string) *Dialect {
	d := &Dialect{
		Name: name,
		Identifiers: core.IdentifierConfig{
			Quote:         `"`,
			QuoteEnd:      `"`,
			Escape:        `""`,
			Normalization: core.NormLowercase,
		},
		functions:     make(map[string]SQLFunction),
		operators:     make(map[string]Operator),
		typeRenderers: make(map[core.StandardType]TypeRenderer),
		typeOverrides: make(map[string]core.StandardType),
		pager:         LimitOffsetPager,
		logger:        slog.New(slog.DiscardHandler),
	}
	d.installBaselineOperators()
	return d
}

// NewDialect creates a new dialect builder with the given name.
// The dialect starts with the baseline operator set and LIMIT/OFFSET paging.
func NewDialect(name string) *Builder {
	return &Builder{dialect: newDialect(name)}
}

// New creates a dialect builder from a DialectConfig.
// The builder will auto-wire features based on config flags when Build() is called.
// This is the preferred constructor for concrete dialects.
func New(cfg *core.DialectConfig) *Builder {
	d := newDialect(cfg.Name)
	d.Identifiers = cfg.Identifiers
	d.DefaultSchema = cfg.DefaultSchema
	d.Placeholder = cfg.Placeholder
	return &Builder{dialect: d, config: cfg}
}

// Identifiers configures identifier quoting and normalization.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:         quote,
		QuoteEnd:      quoteEnd,
		Escape:        escape,
		Normalization: norm,
	}
	return b
}

// DefaultSchema sets the default schema name.
func (b *Builder) DefaultSchema(schema string) *Builder {
	b.dialect.DefaultSchema = schema
	return b
}

// PlaceholderStyle sets the parameter placeholder style.
func (b *Builder) PlaceholderStyle(style core.PlaceholderStyle) *Builder {
	b.dialect.Placeholder = style
	return b
}

// Paging selects one of the standard pagers.
func (b *Builder) Paging(style core.PagingStyle) *Builder {
	b.dialect.Paging = style
	b.dialect.pager = PagerFor(style)
	b.pagerSet = true
	return b
}

// Pager installs a custom pagination transformer.
func (b *Builder) Pager(p Pager) *Builder {
	b.dialect.pager = p
	b.pagerSet = true
	return b
}

// PreparedPaging sets the default pagination mode.
func (b *Builder) PreparedPaging(prepared bool) *Builder {
	b.dialect.preparedPaging = prepared
	return b
}

// Function installs a SQL function.
func (b *Builder) Function(name string, fn SQLFunction) *Builder {
	b.dialect.InstallFunction(name, fn)
	return b
}

// Operator installs a scalar-only operator renderer.
func (b *Builder) Operator(token string, r term.Renderer) *Builder {
	b.dialect.SetOperatorRenderer(token, r)
	return b
}

// ListOperator installs an array-supporting operator renderer.
func (b *Builder) ListOperator(token string, r term.Renderer) *Builder {
	b.dialect.SetListOperatorRenderer(token, r)
	return b
}

// TypeRenderer installs the native type renderer for a standard type.
func (b *Builder) TypeRenderer(st core.StandardType, r TypeRenderer) *Builder {
	b.dialect.RegisterTypeRenderer(st, r)
	return b
}

// TypeRenderers installs several native type renderers at once.
func (b *Builder) TypeRenderers(renderers map[core.StandardType]TypeRenderer) *Builder {
	for st, r := range renderers {
		b.dialect.RegisterTypeRenderer(st, r)
	}
	return b
}

// DefaultTypeRenderer sets the fallback native type renderer.
func (b *Builder) DefaultTypeRenderer(r TypeRenderer) *Builder {
	b.dialect.SetDefaultTypeRenderer(r)
	return b
}

// TypeOverride maps a vendor type token to a standard type.
func (b *Builder) TypeOverride(raw string, st core.StandardType) *Builder {
	b.dialect.RegisterTypeOverride(raw, st)
	return b
}

// WithDataTypes adds native type names for display.
func (b *Builder) WithDataTypes(types ...string) *Builder {
	b.dialect.dataTypes = append(b.dialect.dataTypes, types...)
	return b
}

// ColumnNamer overrides how alias.column references are rendered.
func (b *Builder) ColumnNamer(fn ColumnNamer) *Builder {
	b.dialect.columnNamer = fn
	return b
}

// QuotedColumns renders column names with the dialect's identifier quotes.
// The alias is left as is.
func (b *Builder) QuotedColumns() *Builder {
	d := b.dialect
	d.columnNamer = func(alias, column string) string {
		return qualify(alias, d.QuoteIdentifier(column))
	}
	return b
}

// Logger sets the logger used for recoverable warnings.
func (b *Builder) Logger(logger *slog.Logger) *Builder {
	b.dialect.SetLogger(logger)
	return b
}

// Build returns the constructed dialect.
// If the builder was created with New(cfg), this auto-wires features based on config flags.
func (b *Builder) Build() *Dialect {
	cfg := b.config
	if cfg == nil {
		return b.dialect
	}
	d := b.dialect

	// ===== Auto-wire paging and functions from config =====
	if !b.pagerSet {
		d.Paging = cfg.Paging
		d.pager = PagerFor(cfg.Paging)
	}

	if cfg.Concat != core.ConcatNone {
		d.addFunctionIfMissing("concat", Concat(cfg.Concat))
	}
	d.addFunctionIfMissing("coalesce", Coalesce)
	if cfg.BitandFunction {
		d.addFunctionIfMissing("bitand", BitandFunction)
	} else {
		d.addFunctionIfMissing("bitand", BitandOperator)
	}

	// ===== Auto-wire operator extensions =====
	if cfg.SupportsIlike {
		d.addOperatorIfMissing("ilike", Operator{Renderer: d.likeRenderer("ILIKE")})
		d.addOperatorIfMissing("nilike", Operator{Renderer: d.likeRenderer("NOT ILIKE")})
	}
	if r := d.regexpRenderer(cfg.Regexp); r != nil {
		d.addOperatorIfMissing("reg", Operator{Renderer: r})
	}

	// ===== Type overrides and display types =====
	for raw, st := range cfg.TypeOverrides {
		key := strings.ToLower(raw)
		if _, exists := d.typeOverrides[key]; !exists {
			d.typeOverrides[key] = st
		}
	}
	d.dataTypes = append(d.dataTypes, cfg.DataTypes...)

	return d
}

func (d *Dialect) addFunctionIfMissing(name string, fn SQLFunction) {
	if _, ok := d.Function(name); !ok {
		d.InstallFunction(name, fn)
	}
}

func (d *Dialect) addOperatorIfMissing(token string, op Operator) {
	if _, ok := d.operators[token]; !ok {
		d.operators[token] = op
	}
}
