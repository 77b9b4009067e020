package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/term"
)

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("ansi")
	require.True(t, ok, "ansi dialect should be registered")
	assert.Same(t, ANSI, d)

	def, ok := dialect.Default()
	require.True(t, ok)
	assert.Same(t, ANSI, def)
	require.NoError(t, ANSI.Validate())
}

func TestCompileCondition(t *testing.T) {
	col := &core.Column{Name: "name"}

	tests := []struct {
		name string
		term *term.Term
		want string
	}{
		{"eq", term.New("name", "eq", "bob", 0), "u.name=#{p.value}"},
		{"in", term.New("name", "in", []string{"a", "b"}, 0), "u.name IN(#{p.value[0]},#{p.value[1]})"},
		{"reverse like", term.New("name", "like", "bob", term.Reverse|term.StartWith|term.EndWith), "#{p.value} LIKE concat('%', u.name, '%')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := ANSI.CompileCondition("p", tt.term, col, "u")
			assert.Equal(t, tt.want, f.String())
		})
	}
	assert.False(t, ANSI.SupportsOperator("ilike"))
	assert.False(t, ANSI.SupportsOperator("reg"))
}

func TestPaginate(t *testing.T) {
	assert.Equal(t, "SELECT 1 LIMIT 10 OFFSET 20", ANSI.PaginateWith("SELECT 1", 2, 10, false))
}

func TestTypes(t *testing.T) {
	tests := []struct {
		col  core.Column
		want string
	}{
		{core.Column{Type: core.TypeVarchar, Length: 64}, "varchar(64)"},
		{core.Column{Type: core.TypeDecimal, Precision: 12, Scale: 2}, "decimal(12,2)"},
		{core.Column{Type: core.TypeTimestampWithTimezone}, "timestamp with time zone"},
		{core.Column{Type: core.TypeSQLXML}, "sqlxml"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := ANSI.NativeType(&tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, core.TypeVarchar, ANSI.ParseStandardType("character varying(30)"))
	assert.Equal(t, core.TypeDouble, ANSI.ParseStandardType("DOUBLE PRECISION"))
	assert.Equal(t, core.TypeInteger, ANSI.ParseStandardType("int"))
}
