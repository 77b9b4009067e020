package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/term"
)

func TestDialect(t *testing.T) {
	d, ok := dialect.Get("sqlite")
	require.True(t, ok, "sqlite dialect should be registered")
	assert.Same(t, SQLite, d)
	require.NoError(t, d.Validate())

	f, _ := SQLite.CompileCondition("p", term.New("title", "like", "x", term.Reverse|term.EndWith), &core.Column{Name: "title"}, "b")
	assert.Equal(t, `#{p.value} LIKE '%'||b."title"`, f.String())

	assert.Equal(t, "SELECT 1 LIMIT 10 OFFSET 0", SQLite.Paginate("SELECT 1", 0, 10))
}

func TestTypes(t *testing.T) {
	tests := []struct {
		raw  string
		want core.StandardType
	}{
		{"INTEGER", core.TypeInteger},
		{"TEXT", core.TypeVarchar},
		{"VARCHAR(40)", core.TypeVarchar},
		{"REAL", core.TypeReal},
		{"datetime", core.TypeTimestamp},
		{"BLOB", core.TypeBlob},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, SQLite.ParseStandardType(tt.raw))
		})
	}

	got, err := SQLite.NativeType(&core.Column{Type: core.TypeVarchar, Length: 20})
	require.NoError(t, err)
	assert.Equal(t, "text", got)

	got, err = SQLite.NativeType(&core.Column{Type: core.TypeBoolean})
	require.NoError(t, err)
	assert.Equal(t, "integer", got)
}
