package memory_test

import (
	"testing"

	"github.com/banterhq/banter"
	"github.com/banterhq/banter/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()
	store := memory.New()

	sessions := []banter.Session{
		{ID: "a", Title: "first", Messages: []banter.Message{
			{Role: banter.RoleUser, Content: "hi"},
		}},
		{ID: "b", Title: "second"},
	}
	require.NoError(t, store.Save(sessions))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "hi", got[0].Messages[0].Content)
}

func TestStore_EmptyLoad(t *testing.T) {
	t.Parallel()
	store := memory.New()
	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveReplacesWholeList(t *testing.T) {
	t.Parallel()
	store := memory.New()
	require.NoError(t, store.Save([]banter.Session{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.Save([]banter.Session{{ID: "c"}}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestStore_LoadCopies(t *testing.T) {
	t.Parallel()
	store := memory.New()
	require.NoError(t, store.Save([]banter.Session{{ID: "a", Title: "orig"}}))

	first, err := store.Load()
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "orig", second[0].Title)
}

func TestStore_Close(t *testing.T) {
	t.Parallel()
	store := memory.New()
	require.NoError(t, store.Save([]banter.Session{{ID: "a"}}))
	require.NoError(t, store.Close())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}
