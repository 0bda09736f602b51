package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "a", CoalesceStr("a", "b"))
	assert.Equal(t, "b", CoalesceStr("", "b"))
	assert.Equal(t, "", CoalesceStr("", ""))
}

func TestStrSliceWithDefault(t *testing.T) {
	fallback := []string{"x", "y"}

	got := StrSliceWithDefault(fallback, []string{"a"})
	assert.Equal(t, []string{"a"}, got)

	got = StrSliceWithDefault(fallback, nil, []string{"b"})
	assert.Equal(t, []string{"b"}, got)

	got = StrSliceWithDefault(fallback, nil)
	assert.Equal(t, fallback, got)

	// The fallback copy must not alias the original.
	got[0] = "mutated"
	assert.Equal(t, "x", fallback[0])
}

func TestUniqueStrings(t *testing.T) {
	assert.Nil(t, UniqueStrings(nil))
	assert.Equal(t, []string{"a", "b", "c"}, UniqueStrings([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{"a"}, UniqueStrings([]string{"a", "a", "a"}))
}
