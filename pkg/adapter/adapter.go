// Package adapter provides the database adapter contract used to introspect
// live schemas into a core.Catalog and to run compiled, paginated queries.
//
// Concrete adapter implementations are in pkg/adapters/ subdirectories and
// register themselves from init().
package adapter

import (
	"context"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

// Adapter defines the interface that all database adapters must implement.
type Adapter interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg core.AdapterConfig) error

	// Close closes the database connection and releases resources.
	Close() error

	// Query executes a SQL statement with positional args and returns rows.
	Query(ctx context.Context, sql string, args ...any) (*core.Rows, error)

	// Introspect reads the columns of a table ("schema.name" or "name").
	// Native type tokens are resolved through the adapter's dialect.
	Introspect(ctx context.Context, table string) (*core.Table, error)

	// Dialect returns the SQL dialect this adapter speaks.
	Dialect() *dialect.Dialect
}
