package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindings_Lookup(t *testing.T) {
	b := NewBindings().
		Add("p", New("age", "in", []int{1, 2, 3}, 0)).
		Add("q", New("name", "eq", "bob", 0)).
		Add("r", &Term{Kind: KindBound, Column: "id", Value: List(7, 8)}).
		Set("_page.size", 10)

	tests := []struct {
		name string
		want any
		ok   bool
	}{
		{"p.value[0]", 1, true},
		{"p.value[2]", 3, true},
		{"p.value[3]", nil, false},
		{"p.value", []any{1, 2, 3}, true},
		{"q.value", "bob", true},
		{"q", "bob", true},
		{"r.value[0]", 7, true},
		{"r.value[1]", 8, true},
		{"r[1]", 8, true},
		{"_page.size", 10, true},
		{"missing.value", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Lookup(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, []string{"p", "q", "r"}, b.Prefixes())
}

func TestBindings_FormatLike(t *testing.T) {
	starts := New("name", "like", "bo", StartWith)
	both := New("name", "nlike", "o", StartWith|EndWith)
	reversed := New("name", "like", "bob", Reverse|StartWith)

	b := NewBindings().Add("s", starts).Add("b", both).Add("r", reversed)

	got, ok := b.Lookup("s.value")
	require.True(t, ok)
	assert.Equal(t, "bo", got, "FormatLike off leaves the value alone")

	b.FormatLike = true
	got, _ = b.Lookup("s.value")
	assert.Equal(t, "bo%", got)
	got, _ = b.Lookup("b.value")
	assert.Equal(t, "%o%", got)
	got, _ = b.Lookup("r.value")
	assert.Equal(t, "bob", got, "reverse terms anchor the column instead")
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%x", LikePattern("x", EndWith))
	assert.Equal(t, "x%", LikePattern("x", StartWith))
	assert.Equal(t, "x", LikePattern("x", 0))
	assert.Equal(t, 5, LikePattern(5, StartWith))
}
