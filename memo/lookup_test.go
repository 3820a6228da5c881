package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMiss_AllocatesNoInteriorNodes(t *testing.T) {
	table := NewTable[int](4)
	table.Store([]Key{"a", "b"}, 1)

	_, ok := table.Load([]Key{"x", "y", "z"})
	assert.False(t, ok)
	_, ok = table.Load([]Key{"a", "nope", "deeper"})
	assert.False(t, ok)

	// the live generation still holds only the "a" branch
	entries := 0
	table.live.Load().Range(func(_, _ any) bool {
		entries++
		return true
	})
	assert.Equal(t, 1, entries, "a read-only miss must not grow the trie")
}
