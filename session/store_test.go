package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore(time.Minute)

	assert.Nil(t, s.Get("missing"))

	lines := []Line{{ProductID: 1, Quantity: 2}, {ProductID: 7, Quantity: 1}}
	s.Set("sess-1", lines)

	got := s.Get("sess-1")
	require.Len(t, got, 2)
	assert.Equal(t, lines, got)

	s.Remove("sess-1")
	assert.Nil(t, s.Get("sess-1"))
}

func TestStoreCopiesOnReadAndWrite(t *testing.T) {
	s := NewStore(time.Minute)

	lines := []Line{{ProductID: 1, Quantity: 2}}
	s.Set("sess-1", lines)
	lines[0].Quantity = 99 // caller mutation must not leak into the store

	got := s.Get("sess-1")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Quantity)

	got[0].Quantity = 50
	again := s.Get("sess-1")
	assert.Equal(t, 2, again[0].Quantity)
}

func TestStoreExpiresEntries(t *testing.T) {
	s := NewStore(20 * time.Millisecond)

	s.Set("sess-1", []Line{{ProductID: 1, Quantity: 1}})
	require.NotNil(t, s.Get("sess-1"))

	time.Sleep(40 * time.Millisecond)
	assert.Nil(t, s.Get("sess-1"))
}
