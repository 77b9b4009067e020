package adapter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/termsql/pkg/core"
)

// maxConcurrentIntrospection bounds the number of in-flight Introspect calls.
const maxConcurrentIntrospection = 4

// LoadCatalog introspects tables concurrently and returns a catalog holding
// one database (named database, speaking a's dialect) and those tables.
// Table IDs follow the order of tables. The first failure cancels the rest.
func LoadCatalog(ctx context.Context, a Adapter, database string, tables ...string) (*core.Catalog, error) {
	d := a.Dialect()
	if d == nil {
		return nil, fmt.Errorf("adapter has no dialect")
	}

	results := make([]*core.Table, len(tables))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentIntrospection)
	for i, name := range tables {
		g.Go(func() error {
			t, err := a.Introspect(gctx, name)
			if err != nil {
				return fmt.Errorf("failed to introspect %s: %w", name, err)
			}
			results[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat := core.NewCatalog()
	db := cat.AddDatabase(database, d.Name)
	for _, t := range results {
		t.Database = db.ID
		cat.AddTable(t)
	}
	return cat, nil
}
