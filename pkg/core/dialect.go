package core

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data with no renderer functions.
//
// The runtime behavior (operators, functions, type renderers) lives in
// pkg/dialect.Dialect, whose Builder reads these flags and auto-wires the
// matching standard renderers.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "mysql", "postgres")
	Name string

	// Identifiers defines quoting and normalization rules
	Identifiers IdentifierConfig

	// DefaultSchema is the default schema name ("main" for DuckDB, "public" for Postgres)
	DefaultSchema string

	// Placeholder defines how positional parameters are formatted after binding
	Placeholder PlaceholderStyle

	// Paging selects the pagination syntax
	Paging PagingStyle

	// Concat selects how the concat function is rendered
	Concat ConcatStyle

	// Framework features (auto-wired by Builder)
	SupportsIlike  bool        // ilike / nilike operators
	Regexp         RegexpStyle // reg operator spelling
	BitandFunction bool        // bitand(a, b) instead of a & b

	// TypeOverrides maps vendor type spellings (lower-case) to standard types
	TypeOverrides map[string]StandardType

	// DataTypes lists the native type names for display
	DataTypes []string
}

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (default SQL behavior).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Oracle, H2).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (MySQL on Linux).
	NormCaseSensitive
	// NormCaseInsensitive normalizes to lowercase for comparison (DuckDB, SQL Server).
	NormCaseInsensitive
)

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (DuckDB, MySQL, SQLite).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL).
	PlaceholderDollar
)

// String returns the style name.
func (p PlaceholderStyle) String() string {
	if p == PlaceholderDollar {
		return "dollar"
	}
	return "question"
}

// PagingStyle defines the pagination syntax of a dialect.
type PagingStyle int

const (
	// PagingLimitOffset renders "LIMIT size OFFSET offset".
	PagingLimitOffset PagingStyle = iota
	// PagingLimitComma renders "LIMIT offset,size" (MySQL).
	PagingLimitComma
	// PagingOffsetFetch renders "OFFSET n ROWS FETCH NEXT m ROWS ONLY" (SQL Server).
	PagingOffsetFetch
	// PagingRownum nests the statement and filters on rownum (Oracle).
	PagingRownum
)

// String returns the style name.
func (p PagingStyle) String() string {
	switch p {
	case PagingLimitComma:
		return "limit-comma"
	case PagingOffsetFetch:
		return "offset-fetch"
	case PagingRownum:
		return "rownum"
	default:
		return "limit-offset"
	}
}

// ConcatStyle defines how string concatenation is rendered.
type ConcatStyle int

const (
	// ConcatFunction renders concat(a, b, c).
	ConcatFunction ConcatStyle = iota
	// ConcatPipes renders a||b||c.
	ConcatPipes
	// ConcatPlus renders a+b+c (SQL Server).
	ConcatPlus
	// ConcatNone installs no concat function.
	ConcatNone
)

// RegexpStyle defines how the reg (regular expression match) operator is rendered.
type RegexpStyle int

const (
	// RegexpNone installs no reg operator.
	RegexpNone RegexpStyle = iota
	// RegexpKeyword renders "col REGEXP p" (MySQL, H2).
	RegexpKeyword
	// RegexpTilde renders "col ~ p" (PostgreSQL).
	RegexpTilde
	// RegexpLikeFunc renders "REGEXP_LIKE(col, p)" (Oracle).
	RegexpLikeFunc
	// RegexpMatchesFunc renders "regexp_matches(col, p)" (DuckDB).
	RegexpMatchesFunc
)

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: ", `, [
	QuoteEnd      string                // End quote character (usually same as Quote, ] for [)
	Escape        string                // Escape sequence: "", ``, ]]
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}
