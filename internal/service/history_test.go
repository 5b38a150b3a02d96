package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_KeepsLatestFourMostRecentFirst(t *testing.T) {
	h := NewHistory()
	for _, p := range []string{"one", "two", "three", "four", "five"} {
		h.Push(p)
	}

	assert.Equal(t, []string{"five", "four", "three", "two"}, h.Entries())
	assert.Equal(t, HistorySize, h.Len())
}

func TestHistory_Latest(t *testing.T) {
	h := NewHistory()

	_, ok := h.Latest()
	assert.False(t, ok)

	h.Push("a")
	h.Push("b")
	latest, ok := h.Latest()
	assert.True(t, ok)
	assert.Equal(t, "b", latest)
}

func TestHistory_EntriesIsACopy(t *testing.T) {
	h := NewHistory()
	h.Push("secret")

	entries := h.Entries()
	entries[0] = "tampered"

	assert.Equal(t, []string{"secret"}, h.Entries())
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory()
	assert.Empty(t, h.Entries())
	assert.Equal(t, 0, h.Len())
}
