package history

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/spigell/career-mentor/internal/careers"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "history.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return store
}

var sampleTop = []Entry{
	{Career: "Software Engineer", Probability: 0.612345},
	{Career: "Data Scientist", Probability: 0.2},
	{Career: "Designer / UI-UX", Probability: 0.05},
}

func TestSaveAndList(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	scores := careers.Scores{Math: 85, Coding: 90}
	first, err := store.Save(ctx, "alice", scores, "robots", sampleTop)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := store.Save(ctx, "alice", careers.Scores{Arts: 99}, "", nil)
	require.NoError(t, err)
	_, err = store.Save(ctx, "bob", scores, "", sampleTop)
	require.NoError(t, err)

	items, err := store.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)

	assert.Equal(t, scores, items[1].Scores)
	assert.Equal(t, "robots", items[1].Interests)
	assert.Equal(t, sampleTop, items[1].Top)
	assert.Equal(t, first.CreatedAt, items[1].CreatedAt)
	assert.Empty(t, items[0].Top)

	latest, err := store.Latest(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	_, err = store.Latest(ctx, "carol")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Save(ctx, "  ", scores, "", sampleTop)
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	a, err := store.Save(ctx, "alice", careers.Scores{}, "", sampleTop)
	require.NoError(t, err)

	// Other users cannot delete the record.
	assert.ErrorIs(t, store.Delete(ctx, "bob", a.ID), ErrNotFound)
	require.NoError(t, store.Delete(ctx, "alice", a.ID))
	assert.ErrorIs(t, store.Delete(ctx, "alice", a.ID), ErrNotFound)

	_, err = store.Get(ctx, "alice", a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	for range 3 {
		_, err := store.Save(ctx, "alice", careers.Scores{}, "", sampleTop)
		require.NoError(t, err)
	}
	_, err := store.Save(ctx, "bob", careers.Scores{}, "", sampleTop)
	require.NoError(t, err)

	n, err := store.DeleteAll(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	items, err := store.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = store.List(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDamagedRankingIsTolerated(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	a, err := store.Save(ctx, "alice", careers.Scores{}, "", sampleTop)
	require.NoError(t, err)
	_, err = store.db.ExecContext(ctx, `UPDATE assessments SET top3 = 'not json' WHERE id = ?`, a.ID)
	require.NoError(t, err)

	got, err := store.Get(ctx, "alice", a.ID)
	require.NoError(t, err)
	assert.Equal(t, []Entry{}, got.Top)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	fs := afero.NewMemMapFs()

	_, err := store.Save(ctx, "alice", careers.Scores{Math: 1}, "data", sampleTop)
	require.NoError(t, err)

	path, err := store.Export(ctx, fs, "alice")
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var items []Assessment
	require.NoError(t, json.Unmarshal(data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "data", items[0].Interests)
	assert.Equal(t, sampleTop, items[0].Top)

	empty, err := store.Export(ctx, fs, "nobody")
	require.NoError(t, err)
	data, err = afero.ReadFile(fs, empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(ctx, path, nil)
	require.NoError(t, err)
	a, err := store.Save(ctx, "alice", careers.Scores{}, "", sampleTop)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(ctx, path, nil)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Latest(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}
