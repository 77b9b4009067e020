package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/term"
)

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("mysql")
	require.True(t, ok, "mysql dialect should be registered")
	assert.Same(t, MySQL, d)
	assert.Equal(t, "`", d.Identifiers.Quote)
	assert.Equal(t, core.PagingLimitComma, d.Paging)
	require.NoError(t, d.Validate())
}

func TestCompileCondition(t *testing.T) {
	col := &core.Column{Name: "order"}

	tests := []struct {
		name string
		term *term.Term
		want string
	}{
		{"eq quotes the column", term.New("order", "eq", 1, 0), "t.`order`=#{p.value}"},
		{"btw", term.New("order", "btw", []int{1, 9}, 0), "t.`order` BETWEEN #{p.value[0]} AND #{p.value[1]}"},
		{"reg", term.New("order", "reg", "^a", 0), "t.`order` REGEXP #{p.value}"},
		{"reverse like", term.New("order", "nlike", "x", term.Reverse|term.EndWith), "#{p.value} NOT LIKE concat('%', t.`order`)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := MySQL.CompileCondition("p", tt.term, col, "t")
			assert.Equal(t, tt.want, f.String())
		})
	}
	assert.Equal(t, "`name`", MySQL.BuildColumnName("", "name"))
}

func TestPaginate(t *testing.T) {
	assert.Equal(t, "SELECT * FROM t LIMIT 20,10", MySQL.PaginateWith("SELECT * FROM t", 2, 10, false))
	assert.Equal(t, "SELECT * FROM t LIMIT #{_page.offset},#{_page.size}", MySQL.PaginateWith("SELECT * FROM t", 2, 10, true))
}

func TestTypes(t *testing.T) {
	tests := []struct {
		raw  string
		want core.StandardType
	}{
		{"int(11)", core.TypeInteger},
		{"varchar(255)", core.TypeVarchar},
		{"datetime", core.TypeTimestamp},
		{"LONGTEXT", core.TypeClob},
		{"tinyint(1)", core.TypeTinyInt},
		{"enum('a','b')", core.TypeVarchar},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, MySQL.ParseStandardType(tt.raw))
		})
	}

	got, err := MySQL.NativeType(&core.Column{Type: core.TypeBoolean})
	require.NoError(t, err)
	assert.Equal(t, "tinyint(1)", got)

	got, err = MySQL.NativeType(&core.Column{Type: core.TypeTimestamp})
	require.NoError(t, err)
	assert.Equal(t, "datetime", got)

	got, err = MySQL.NativeType(&core.Column{Type: core.TypeOther})
	require.NoError(t, err)
	assert.Equal(t, "varchar(255)", got)
}
