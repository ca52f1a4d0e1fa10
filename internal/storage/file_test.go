package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	newStore := func(t *testing.T) *FileStore {
		s, err := NewFileStore(t.TempDir())
		require.NoError(t, err)
		return s
	}

	t.Run("Save then load round trip", func(t *testing.T) {
		s := newStore(t)

		type payload struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}

		require.NoError(t, s.Save(SlotCart, payload{Name: "earbuds", Count: 2}))

		var got payload
		require.NoError(t, s.Load(SlotCart, &got))
		assert.Equal(t, payload{Name: "earbuds", Count: 2}, got)
	})

	t.Run("Missing slot", func(t *testing.T) {
		s := newStore(t)

		var got map[string]any
		err := s.Load(SlotWishlist, &got)
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("Malformed slot returns decode error", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o644))

		var got map[string]any
		err = s.Load(SlotUser, &got)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("Malformed slot does not affect other slots", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, s.Save(SlotCart, []int{1, 2, 3}))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "wishlist.json"), []byte("???"), 0o644))

		var cart []int
		require.NoError(t, s.Load(SlotCart, &cart))
		assert.Equal(t, []int{1, 2, 3}, cart)
	})

	t.Run("Save replaces previous snapshot", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.Save(SlotCart, []int{1}))
		require.NoError(t, s.Save(SlotCart, []int{4, 5}))

		var got []int
		require.NoError(t, s.Load(SlotCart, &got))
		assert.Equal(t, []int{4, 5}, got)
	})

	t.Run("Delete removes slot", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.Save(SlotUser, map[string]int{"id": 1}))
		require.NoError(t, s.Delete(SlotUser))

		var got map[string]int
		assert.ErrorIs(t, s.Load(SlotUser, &got), ErrSlotNotFound)
	})

	t.Run("Delete absent slot is a no-op", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(SlotOrders))
	})
}

func TestMemStore(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		s := NewMemStore()
		require.NoError(t, s.Save(SlotCart, []string{"a"}))

		var got []string
		require.NoError(t, s.Load(SlotCart, &got))
		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("SetRaw plants malformed payload", func(t *testing.T) {
		s := NewMemStore()
		s.SetRaw(SlotUser, []byte("{broken"))

		var got map[string]any
		assert.Error(t, s.Load(SlotUser, &got))
	})
}
