package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/adapter"
	"github.com/leapstack-labs/termsql/pkg/core"
)

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   core.AdapterConfig
		expected string
	}{
		{
			name: "basic connection",
			config: core.AdapterConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "testdb",
				Username: "user",
				Password: "pass",
			},
			expected: "host=localhost port=5432 dbname=testdb sslmode=disable user=user password=pass",
		},
		{
			name: "with custom sslmode",
			config: core.AdapterConfig{
				Host:     "prod.example.com",
				Database: "proddb",
				Username: "admin",
				Options:  map[string]string{"sslmode": "require"},
			},
			expected: "host=prod.example.com port=5432 dbname=proddb sslmode=require user=admin",
		},
		{
			name:     "defaults",
			config:   core.AdapterConfig{Database: "mydb"},
			expected: "host=localhost port=5432 dbname=mydb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildPostgresDSN(tt.config))
		})
	}
}

func TestRegistration(t *testing.T) {
	adp, err := adapter.NewAdapter(core.AdapterConfig{Type: "postgres"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres", adp.Dialect().Name)
}

func TestIntrospect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	adp := New(nil)
	adp.DB = db
	adp.Cfg = core.AdapterConfig{Schema: "sales"}

	mock.ExpectQuery(`table_schema = \$1 AND table_name = \$2`).
		WithArgs("sales", "orders").
		WillReturnRows(sqlmock.NewRows([]string{
			"column_name", "data_type", "character_maximum_length",
			"numeric_precision", "numeric_scale", "is_nullable", "ordinal_position",
		}).
			AddRow("id", "bigint", nil, int64(64), int64(0), "NO", int64(1)).
			AddRow("note", "text", nil, nil, nil, "YES", int64(2)).
			AddRow("placed_at", "timestamp with time zone", nil, nil, nil, "NO", int64(3)).
			AddRow("ref", "uuid", nil, nil, nil, "YES", int64(4)))

	table, err := adp.Introspect(context.Background(), "orders")
	require.NoError(t, err)
	require.Len(t, table.Columns, 4)

	want := []core.StandardType{core.TypeBigInt, core.TypeClob, core.TypeTimestampWithTimezone, core.TypeVarchar}
	for i, st := range want {
		assert.Equal(t, st, table.Columns[i].Type, table.Columns[i].Name)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
