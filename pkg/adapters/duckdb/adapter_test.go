package duckdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/adapter"
	"github.com/leapstack-labs/termsql/pkg/core"
)

func TestAdapter_Connect(t *testing.T) {
	tests := []struct {
		name      string
		setupPath func(t *testing.T) string
		verify    func(t *testing.T, path string)
	}{
		{
			name:      "in-memory",
			setupPath: func(_ *testing.T) string { return ":memory:" },
		},
		{
			name: "file-based",
			setupPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "test.duckdb")
			},
			verify: func(t *testing.T, path string) {
				_, err := os.Stat(path)
				assert.False(t, os.IsNotExist(err), "database file was not created")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adp := New(nil)
			dbPath := tt.setupPath(t)
			require.NoError(t, adp.Connect(context.Background(), core.AdapterConfig{Path: dbPath}))
			defer func() { _ = adp.Close() }()

			if tt.verify != nil {
				tt.verify(t, dbPath)
			}
		})
	}
}

func TestAdapter_ConnectSettings(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)
	err := adp.Connect(ctx, core.AdapterConfig{
		Params: map[string]any{"settings": map[string]any{"threads": 2}},
	})
	require.NoError(t, err)
	defer func() { _ = adp.Close() }()

	rows, err := adp.Query(ctx, "SELECT current_setting('threads')")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()
	require.True(t, rows.Next())
	var threads int64
	require.NoError(t, rows.Scan(&threads))
	assert.Equal(t, int64(2), threads)
}

func TestAdapter_ConnectBadParams(t *testing.T) {
	adp := New(nil)
	err := adp.Connect(context.Background(), core.AdapterConfig{
		Params: map[string]any{"settings": map[string]any{"bad name": "x"}},
	})
	require.Error(t, err)
	assert.False(t, adp.IsConnected())
}

func TestAdapter_Introspect(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)
	require.NoError(t, adp.Connect(ctx, core.AdapterConfig{}))
	defer func() { _ = adp.Close() }()

	require.NoError(t, adp.Exec(ctx, `CREATE TABLE items (
		id INTEGER NOT NULL,
		name VARCHAR,
		price DECIMAL(10,2),
		added TIMESTAMP
	)`))

	table, err := adp.Introspect(ctx, "items")
	require.NoError(t, err)
	assert.Equal(t, "main", table.Schema)
	require.Len(t, table.Columns, 4)

	want := []core.StandardType{core.TypeInteger, core.TypeVarchar, core.TypeDecimal, core.TypeTimestamp}
	for i, st := range want {
		assert.Equal(t, st, table.Columns[i].Type, table.Columns[i].Name)
	}
	assert.False(t, table.Columns[0].Nullable)
	assert.True(t, table.Columns[1].Nullable)

	_, err = adp.Introspect(ctx, "missing")
	require.ErrorIs(t, err, adapter.ErrTableNotFound)
}

func TestAdapter_NotConnected(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)

	require.ErrorIs(t, adp.Exec(ctx, "SELECT 1"), adapter.ErrNotConnected)
	_, err := adp.Query(ctx, "SELECT 1")
	require.ErrorIs(t, err, adapter.ErrNotConnected)
	_, err = adp.Introspect(ctx, "t")
	require.ErrorIs(t, err, adapter.ErrNotConnected)
}
