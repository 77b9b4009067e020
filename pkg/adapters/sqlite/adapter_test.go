package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/internal/testutil"
	"github.com/leapstack-labs/termsql/pkg/adapter"
	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	sqlitedialect "github.com/leapstack-labs/termsql/pkg/dialects/sqlite"
	"github.com/leapstack-labs/termsql/pkg/sqlfrag"
	"github.com/leapstack-labs/termsql/pkg/term"
)

const schemaDDL = `CREATE TABLE users (
	id INTEGER PRIMARY KEY,
	name VARCHAR(40) NOT NULL,
	bio TEXT,
	balance DECIMAL(10,2),
	score REAL,
	joined DATETIME
)`

func connectMemory(t *testing.T) *Adapter {
	t.Helper()
	adp := New(testutil.NewTestLogger(t))
	require.NoError(t, adp.Connect(context.Background(), core.AdapterConfig{}))
	t.Cleanup(func() { _ = adp.Close() })
	require.NoError(t, adp.Exec(context.Background(), schemaDDL))
	return adp
}

func TestAdapter_Connect(t *testing.T) {
	t.Run("file-based", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.db")
		adp := New(nil)
		require.NoError(t, adp.Connect(context.Background(), core.AdapterConfig{Path: path}))
		defer func() { _ = adp.Close() }()

		require.NoError(t, adp.Exec(context.Background(), "CREATE TABLE t (id INTEGER)"))
		_, err := os.Stat(path)
		assert.NoError(t, err, "database file should exist")
	})

	t.Run("registered", func(t *testing.T) {
		adp, err := adapter.NewAdapter(core.AdapterConfig{Type: "sqlite"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "sqlite", adp.Dialect().Name)
	})
}

func TestAdapter_Introspect(t *testing.T) {
	adp := connectMemory(t)

	table, err := adp.Introspect(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, "main", table.Schema)
	require.Len(t, table.Columns, 6)

	tests := []struct {
		name      string
		typ       core.StandardType
		length    int
		precision int
		scale     int
		nullable  bool
	}{
		{"id", core.TypeInteger, 0, 0, 0, true},
		{"name", core.TypeVarchar, 40, 0, 0, false},
		{"bio", core.TypeVarchar, 0, 0, 0, true},
		{"balance", core.TypeDecimal, 0, 10, 2, true},
		{"score", core.TypeReal, 0, 0, 0, true},
		{"joined", core.TypeTimestamp, 0, 0, 0, true},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := table.Columns[i]
			assert.Equal(t, tt.name, col.Name)
			assert.Equal(t, i+1, col.Position)
			assert.Equal(t, tt.typ, col.Type)
			assert.Equal(t, tt.length, col.Length)
			assert.Equal(t, tt.precision, col.Precision)
			assert.Equal(t, tt.scale, col.Scale)
			assert.Equal(t, tt.nullable, col.Nullable)
		})
	}
}

func TestAdapter_IntrospectMissing(t *testing.T) {
	adp := connectMemory(t)

	_, err := adp.Introspect(context.Background(), "ghost")
	require.ErrorIs(t, err, adapter.ErrTableNotFound)

	_, err = New(nil).Introspect(context.Background(), "users")
	require.ErrorIs(t, err, adapter.ErrNotConnected)
}

func TestAdapter_IntrospectUnknownType(t *testing.T) {
	adp := connectMemory(t)
	require.NoError(t, adp.Exec(context.Background(), "CREATE TABLE shapes (outline GEOMETRY)"))

	logger, rec := testutil.NewRecorder()
	sqlitedialect.SQLite.SetLogger(logger)
	t.Cleanup(func() { sqlitedialect.SQLite.SetLogger(nil) })

	table, err := adp.Introspect(context.Background(), "shapes")
	require.NoError(t, err)
	require.Len(t, table.Columns, 1)
	assert.Equal(t, core.TypeOther, table.Columns[0].Type)
	assert.Equal(t, "GEOMETRY", table.Columns[0].NativeRaw)

	assert.Equal(t, []string{"unknown native type, using OTHER"}, rec.Messages(slog.LevelWarn))
	v, ok := rec.Attr(slog.LevelWarn, "type")
	require.True(t, ok)
	assert.Equal(t, "GEOMETRY", v.String())
}

// TestCompiledQuery runs a compiled, bound, paginated condition end to end.
func TestCompiledQuery(t *testing.T) {
	ctx := context.Background()
	adp := connectMemory(t)
	for _, name := range []string{"ann", "anna", "bob", "annika", "carl"} {
		require.NoError(t, adp.Exec(ctx, "INSERT INTO users (name) VALUES (?)", name))
	}

	cat, err := adapter.LoadCatalog(ctx, adp, "memory", "users")
	require.NoError(t, err)
	d := adp.Dialect()
	users, ok := cat.TableByName("", "users")
	require.True(t, ok)
	col, ok := users.Column("name")
	require.True(t, ok)

	tm := term.New("name", "like", "ann", term.StartWith)
	frag, value := d.CompileCondition("p", tm, col, "u")
	assert.Equal(t, "ann", value.Scalar())

	sqlText := d.PaginateWith("SELECT u.name FROM users u WHERE "+frag.String()+" ORDER BY u.id", 0, 2, true)

	b := term.NewBindings()
	b.FormatLike = true
	b.Add("p", tm)
	b.SetAll(dialect.PageParams(0, 2))

	stmt, args, err := sqlfrag.Bind(sqlText, d.Placeholder, b.Lookup)
	require.NoError(t, err)
	assert.Equal(t, []any{"ann%", 2, 0}, args)

	rows, err := adp.Query(ctx, stmt, args...)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var got []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		got = append(got, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"ann", "anna"}, got)
}
