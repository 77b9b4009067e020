package adapter

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
)

func infoSchemaDialect() *dialect.Dialect {
	return dialect.NewDialect("infoschema").
		DefaultSchema("public").
		PlaceholderStyle(core.PlaceholderDollar).
		TypeOverride("character varying", core.TypeVarchar).
		DefaultTypeRenderer(dialect.Lowercase).
		Build()
}

func newMockBase(t *testing.T) (*BaseSQLAdapter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &BaseSQLAdapter{DB: db}, mock
}

func TestBaseSQLAdapter_Close(t *testing.T) {
	t.Run("close with nil DB", func(t *testing.T) {
		assert.NoError(t, (&BaseSQLAdapter{}).Close())
	})

	t.Run("close with open DB", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose()
		base := &BaseSQLAdapter{DB: db}
		require.NoError(t, base.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBaseSQLAdapter_NotConnected(t *testing.T) {
	ctx := context.Background()
	base := &BaseSQLAdapter{}

	assert.False(t, base.IsConnected())
	require.ErrorIs(t, base.Exec(ctx, "SELECT 1"), ErrNotConnected)

	rows, err := base.Query(ctx, "SELECT 1")
	require.ErrorIs(t, err, ErrNotConnected)
	assert.Nil(t, rows)

	_, err = base.IntrospectInformationSchema(ctx, "users", infoSchemaDialect())
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestBaseSQLAdapter_Exec(t *testing.T) {
	ctx := context.Background()

	t.Run("success with args", func(t *testing.T) {
		base, mock := newMockBase(t)
		mock.ExpectExec("DELETE FROM users").WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, base.Exec(ctx, "DELETE FROM users WHERE id = ?", 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error is wrapped", func(t *testing.T) {
		base, mock := newMockBase(t)
		mock.ExpectExec("INVALID").WillReturnError(assert.AnError)
		err := base.Exec(ctx, "INVALID SQL")
		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to execute SQL")
	})
}

func TestBaseSQLAdapter_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("success with args", func(t *testing.T) {
		base, mock := newMockBase(t)
		mock.ExpectQuery("SELECT id, name FROM users").
			WithArgs(18, 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "alice").AddRow(2, "bob"))

		rows, err := base.Query(ctx, "SELECT id, name FROM users WHERE age > ? LIMIT ?", 18, 10)
		require.NoError(t, err)
		defer func() { _ = rows.Close() }()

		var names []string
		for rows.Next() {
			var id int
			var name string
			require.NoError(t, rows.Scan(&id, &name))
			names = append(names, name)
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, []string{"alice", "bob"}, names)
	})

	t.Run("error is wrapped", func(t *testing.T) {
		base, mock := newMockBase(t)
		mock.ExpectQuery("INVALID").WillReturnError(assert.AnError)
		rows, err := base.Query(ctx, "INVALID SQL")
		require.Error(t, err)
		assert.Nil(t, rows)
		assert.Contains(t, err.Error(), "failed to execute query")
	})
}

func TestParseQualifiedName(t *testing.T) {
	d := infoSchemaDialect()
	tests := []struct {
		input      string
		wantSchema string
		wantName   string
	}{
		{"users", "public", "users"},
		{"sales.orders", "sales", "orders"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			schema, name := ParseQualifiedName(tt.input, d)
			assert.Equal(t, tt.wantSchema, schema)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "users", Qualify("", "users"))
	assert.Equal(t, "app.users", Qualify("app", "users"))
	assert.Equal(t, "other.users", Qualify("app", "other.users"))
}

var infoSchemaColumns = []string{
	"column_name", "data_type", "character_maximum_length",
	"numeric_precision", "numeric_scale", "is_nullable", "ordinal_position",
}

func TestBaseSQLAdapter_IntrospectInformationSchema(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves types", func(t *testing.T) {
		base, mock := newMockBase(t)
		mock.ExpectQuery("FROM information_schema.columns").
			WithArgs("public", "users").
			WillReturnRows(sqlmock.NewRows(infoSchemaColumns).
				AddRow("id", "integer", nil, int64(32), int64(0), "NO", int64(1)).
				AddRow("name", "character varying", int64(120), nil, nil, "YES", int64(2)).
				AddRow("amount", "numeric", nil, int64(10), int64(2), "YES", int64(3)))

		table, err := base.IntrospectInformationSchema(ctx, "users", infoSchemaDialect())
		require.NoError(t, err)
		assert.Equal(t, "public", table.Schema)
		assert.Equal(t, "users", table.Name)
		require.Len(t, table.Columns, 3)

		id := table.Columns[0]
		assert.Equal(t, core.TypeInteger, id.Type)
		assert.Equal(t, "integer", id.NativeRaw)
		assert.False(t, id.Nullable)
		assert.Equal(t, 1, id.Position)

		name := table.Columns[1]
		assert.Equal(t, core.TypeVarchar, name.Type)
		assert.Equal(t, 120, name.Length)
		assert.True(t, name.Nullable)

		amount := table.Columns[2]
		assert.Equal(t, core.TypeNumeric, amount.Type)
		assert.Equal(t, 10, amount.Precision)
		assert.Equal(t, 2, amount.Scale)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("qualified name", func(t *testing.T) {
		base, mock := newMockBase(t)
		mock.ExpectQuery("FROM information_schema.columns").
			WithArgs("sales", "orders").
			WillReturnRows(sqlmock.NewRows(infoSchemaColumns).
				AddRow("id", "bigint", nil, int64(64), int64(0), "NO", int64(1)))

		table, err := base.IntrospectInformationSchema(ctx, "sales.orders", infoSchemaDialect())
		require.NoError(t, err)
		assert.Equal(t, "sales.orders", table.QualifiedName())
		assert.Equal(t, core.TypeBigInt, table.Columns[0].Type)
	})

	t.Run("missing table", func(t *testing.T) {
		base, mock := newMockBase(t)
		mock.ExpectQuery("FROM information_schema.columns").
			WillReturnRows(sqlmock.NewRows(infoSchemaColumns))

		_, err := base.IntrospectInformationSchema(ctx, "ghost", infoSchemaDialect())
		require.ErrorIs(t, err, ErrTableNotFound)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("query error", func(t *testing.T) {
		base, mock := newMockBase(t)
		mock.ExpectQuery("FROM information_schema.columns").WillReturnError(assert.AnError)

		_, err := base.IntrospectInformationSchema(ctx, "users", infoSchemaDialect())
		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to query column metadata")
	})
}
