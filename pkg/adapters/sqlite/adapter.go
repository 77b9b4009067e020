// Package sqlite provides a SQLite database adapter for termsql, backed by
// the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/leapstack-labs/termsql/pkg/adapter"
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	sqlitedialect "github.com/leapstack-labs/termsql/pkg/dialects/sqlite"
)

const memoryPath = ":memory:"

// Adapter implements the adapter.Adapter interface for SQLite.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQLite adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the SQLite dialect.
func (a *Adapter) Dialect() *dialect.Dialect {
	return sqlitedialect.SQLite
}

// Connect opens the database file at cfg.Path.
// An empty path or ":memory:" opens a private in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg core.AdapterConfig) error {
	path := cfg.Path
	if path == "" {
		path = memoryPath
	}

	a.Logger.Debug("opening sqlite database", slog.String("path", path))

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite connection: %w", err)
	}
	if path == memoryPath {
		// Every connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// typeArgs matches the "(n)" or "(p,s)" suffix of a declared type.
var typeArgs = regexp.MustCompile(`\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\)`)

// Introspect reads table columns with pragma_table_info.
func (a *Adapter) Introspect(ctx context.Context, table string) (*core.Table, error) {
	if a.DB == nil {
		return nil, adapter.ErrNotConnected
	}

	d := a.Dialect()
	schema, name := adapter.ParseQualifiedName(table, d)

	rows, err := a.DB.QueryContext(ctx,
		`SELECT cid, name, type, "notnull" FROM pragma_table_info(?, ?) ORDER BY cid`, name, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to query column metadata: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var columns []core.Column
	for rows.Next() {
		var (
			col     core.Column
			notNull int
		)
		if err := rows.Scan(&col.Position, &col.Name, &col.NativeRaw, &notNull); err != nil {
			return nil, fmt.Errorf("failed to scan column metadata: %w", err)
		}
		col.Position++
		col.Nullable = notNull == 0
		col.Type = d.ParseStandardType(col.NativeRaw)
		applyTypeArgs(&col)
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column metadata: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", adapter.ErrTableNotFound, table)
	}

	return &core.Table{Schema: schema, Name: name, Columns: columns}, nil
}

// applyTypeArgs copies declared size arguments onto the column. Two
// arguments, or one on a numeric type, are precision and scale.
func applyTypeArgs(col *core.Column) {
	m := typeArgs.FindStringSubmatch(col.NativeRaw)
	if m == nil {
		return
	}
	first, _ := strconv.Atoi(m[1])
	switch {
	case m[2] != "":
		col.Precision = first
		col.Scale, _ = strconv.Atoi(m[2])
	case col.Type == core.TypeNumeric || col.Type == core.TypeDecimal:
		col.Precision = first
	default:
		col.Length = first
	}
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
