package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesAdd(t *testing.T) {
	f := NewFavorites()

	fav, existed, err := f.Add(Favorite{Name: "Maple at Dubai Hills", Community: "Dubai Hills Estate"})
	require.NoError(t, err)
	assert.False(t, existed)
	assert.NotEmpty(t, fav.ID)
	assert.False(t, fav.SavedAt.IsZero())

	assert.True(t, f.Has("Maple at Dubai Hills"))
	assert.Len(t, f.All(), 1)
}

func TestFavoritesAddUpsertsByName(t *testing.T) {
	f := NewFavorites()

	first, _, err := f.Add(Favorite{Name: "Maple at Dubai Hills", Notes: "visit in June"})
	require.NoError(t, err)

	// Name match is case-insensitive; the entry is updated in place and
	// keeps its identity and notes.
	updated, existed, err := f.Add(Favorite{Name: "maple at dubai hills", StartingPrice: 2500000})
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "visit in June", updated.Notes)
	assert.Equal(t, 2500000, updated.StartingPrice)
	assert.Len(t, f.All(), 1)
}

func TestFavoritesUpdateNotes(t *testing.T) {
	f := NewFavorites()
	fav, _, err := f.Add(Favorite{Name: "Sidra Villas"})
	require.NoError(t, err)

	ok, err := f.UpdateNotes(fav.ID, "great schools nearby")
	require.NoError(t, err)
	assert.True(t, ok)

	got, found := f.Get("Sidra Villas")
	require.True(t, found)
	assert.Equal(t, "great schools nearby", got.Notes)

	ok, err = f.UpdateNotes("no-such-id", "x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoritesAppendNotes(t *testing.T) {
	f := NewFavorites()
	fav, _, err := f.Add(Favorite{Name: "Sidra Villas", Notes: "first note"})
	require.NoError(t, err)

	ok, err := f.AppendNotes(fav.ID, "second note")
	require.NoError(t, err)
	assert.True(t, ok)

	got, _ := f.Get("Sidra Villas")
	assert.Equal(t, "first note\n\nsecond note", got.Notes)
}

func TestFavoritesRemove(t *testing.T) {
	f := NewFavorites()
	fav, _, err := f.Add(Favorite{Name: "Sidra Villas"})
	require.NoError(t, err)

	ok, err := f.Remove(fav.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, f.Has("Sidra Villas"))
}

func TestFavoritesPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")

	f, err := LoadFavorites(path)
	require.NoError(t, err)
	assert.Empty(t, f.All())

	_, _, err = f.Add(Favorite{Name: "Palmiera Villas", Community: "The Oasis by Emaar", Features: []string{"Private Lagoon Access"}})
	require.NoError(t, err)

	reloaded, err := LoadFavorites(path)
	require.NoError(t, err)
	all := reloaded.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Palmiera Villas", all[0].Name)
	assert.Equal(t, []string{"Private Lagoon Access"}, all[0].Features)
}
