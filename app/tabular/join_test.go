package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	key, val string
}

func TestFindOneFirstMatch(t *testing.T) {
	ix := NewIndex([]rec{
		{"101", "first"},
		{"102", "other"},
		{"101", "second"},
	}, func(r rec) string { return r.key })

	got, ok := ix.FindOne("101")
	require.True(t, ok)
	assert.Equal(t, "first", got.val, "duplicate keys resolve to the first row")

	// Deterministic on repeat lookups.
	again, _ := ix.FindOne("101")
	assert.Equal(t, got, again)

	_, ok = ix.FindOne("999")
	assert.False(t, ok)
}

func TestFindAllPreservesRowOrder(t *testing.T) {
	ix := NewIndex([]rec{
		{"a", "1"},
		{"b", "2"},
		{"a", "3"},
		{"a", "4"},
	}, func(r rec) string { return r.key })

	all := ix.FindAll("a")
	require.Len(t, all, 3)
	assert.Equal(t, []rec{{"a", "1"}, {"a", "3"}, {"a", "4"}}, all)

	assert.Empty(t, ix.FindAll("z"))
}
