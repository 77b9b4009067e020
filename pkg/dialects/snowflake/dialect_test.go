package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/termsql/pkg/core"
	"github.com/leapstack-labs/termsql/pkg/dialect"
	"github.com/leapstack-labs/termsql/pkg/term"
)

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("snowflake")
	require.True(t, ok, "snowflake dialect should be registered")
	assert.Same(t, Snowflake, d)
	assert.Equal(t, "PUBLIC", d.DefaultSchema)
	assert.Equal(t, core.NormUppercase, d.Identifiers.Normalization)
	require.NoError(t, d.Validate())
}

func TestCompileCondition(t *testing.T) {
	col := &core.Column{Name: "NAME"}

	tests := []struct {
		name string
		term *term.Term
		want string
	}{
		{"ilike", term.New("NAME", "ilike", "a%", 0), `T."NAME" ILIKE #{p.value}`},
		{"reg", term.New("NAME", "reg", "^a", 0), `T."NAME" REGEXP #{p.value}`},
		{"rlike", term.New("NAME", "rlike", "^a", 0), `RLIKE(T."NAME", #{p.value})`},
		{"in", term.New("NAME", "in", []string{"a", "b"}, 0), `T."NAME" IN(#{p.value[0]},#{p.value[1]})`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := Snowflake.CompileCondition("p", tt.term, col, "T")
			assert.Equal(t, tt.want, f.String())
		})
	}
}

func TestTypes(t *testing.T) {
	tests := []struct {
		raw  string
		want core.StandardType
	}{
		{"NUMBER(38,0)", core.TypeNumeric},
		{"STRING", core.TypeVarchar},
		{"TIMESTAMP_NTZ(9)", core.TypeTimestamp},
		{"TIMESTAMP_TZ", core.TypeTimestampWithTimezone},
		{"VARIANT", core.TypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Snowflake.ParseStandardType(tt.raw))
		})
	}

	got, err := Snowflake.NativeType(&core.Column{Type: core.TypeDecimal, Precision: 10, Scale: 2})
	require.NoError(t, err)
	assert.Equal(t, "number(10,2)", got)

	got, err = Snowflake.NativeType(&core.Column{Type: core.TypeTimestamp})
	require.NoError(t, err)
	assert.Equal(t, "timestamp_ntz", got)
}
