package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/term"
)

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("oracle")
	require.True(t, ok, "oracle dialect should be registered")
	assert.Same(t, Oracle, d)
	require.NoError(t, d.Validate())
}

func TestCompileCondition(t *testing.T) {
	col := &core.Column{Name: "NAME"}

	tests := []struct {
		name string
		term *term.Term
		want string
	}{
		{"reverse like uses pipes", term.New("NAME", "like", "x", term.Reverse|term.StartWith|term.EndWith), `#{p.value} LIKE '%'||t."NAME"||'%'`},
		{"reg", term.New("NAME", "reg", "^A", 0), `REGEXP_LIKE(t."NAME", #{p.value})`},
		{"gte", term.New("NAME", "gte", "M", 0), `t."NAME">=#{p.value}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := Oracle.CompileCondition("p", tt.term, col, "t")
			assert.Equal(t, tt.want, f.String())
		})
	}

	out, ok := Oracle.RenderFunction("bitand", dialect.PhaseWhere, `t."FLAGS"`, "4")
	require.True(t, ok)
	assert.Equal(t, `bitand(t."FLAGS", 4)`, out)
}

func TestPaginate(t *testing.T) {
	base := "SELECT * FROM users ORDER BY id"
	assert.Equal(t,
		"SELECT * FROM (SELECT row_.*, rownum rownum_ FROM (SELECT * FROM users ORDER BY id) row_ WHERE rownum <= 30) WHERE rownum_ > 20",
		Oracle.PaginateWith(base, 2, 10, false))
	assert.Equal(t,
		"SELECT * FROM (SELECT row_.*, rownum rownum_ FROM (SELECT * FROM users ORDER BY id) row_ WHERE rownum <= #{_page.end}) WHERE rownum_ > #{_page.offset}",
		Oracle.PaginateWith(base, 2, 10, true))
}

func TestTypes(t *testing.T) {
	assert.Equal(t, core.TypeVarchar, Oracle.ParseStandardType("VARCHAR2(100)"))
	assert.Equal(t, core.TypeNumeric, Oracle.ParseStandardType("NUMBER(10,2)"))
	assert.Equal(t, core.TypeNVarchar, Oracle.ParseStandardType("nvarchar2"))
	assert.Equal(t, core.TypeLongVarBinary, Oracle.ParseStandardType("LONG RAW"))
	assert.Equal(t, core.TypeTimestamp, Oracle.ParseStandardType("TIMESTAMP(6)"))

	got, err := Oracle.NativeType(&core.Column{Type: core.TypeVarchar, Length: 64})
	require.NoError(t, err)
	assert.Equal(t, "varchar2(64)", got)

	got, err = Oracle.NativeType(&core.Column{Type: core.TypeBoolean})
	require.NoError(t, err)
	assert.Equal(t, "number(1)", got)
}
