package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animebay/animebay-scraper/internal/errs"
	"github.com/animebay/animebay-scraper/models"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	x, err := OpenSQLite(context.Background(), "", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = x.Close() })

	// strictly increasing clock
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	x.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	return x
}

func TestSQLiteDocuments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	x := newTestStore(t)

	_, err := x.Get(ctx, "users", "u1")
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.ErrorIs(t, x.Update(ctx, "users", "u1", map[string]any{"bio": "x"}), errs.ErrNotFound)

	require.NoError(t, x.Set(ctx, "users", "u1", map[string]any{"name": "Sora", "email": "sora@example.com"}))
	first, err := x.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", first.ID)
	assert.Equal(t, "Sora", first.Fields["name"])

	require.NoError(t, x.Update(ctx, "users", "u1", map[string]any{"bio": "hello"}))
	doc, err := x.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Sora", "email": "sora@example.com", "bio": "hello"}, doc.Fields)

	require.NoError(t, x.Set(ctx, "users", "u1", map[string]any{"name": "Shiro"}))
	doc, err = x.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Shiro"}, doc.Fields)
	assert.Equal(t, first.Created, doc.Created)

	require.NoError(t, x.Delete(ctx, "users", "u1"))
	require.NoError(t, x.Delete(ctx, "users", "u1"))
	_, err = x.Get(ctx, "users", "u1")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSQLiteQuery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	x := newTestStore(t)

	require.NoError(t, x.Set(ctx, "comments", "a", map[string]any{"animeId": "naruto", "text": "1"}))
	require.NoError(t, x.Set(ctx, "comments", "b", map[string]any{"animeId": "bleach", "text": "2"}))
	require.NoError(t, x.Set(ctx, "comments", "c", map[string]any{"animeId": "naruto", "text": "3"}))
	require.NoError(t, x.Set(ctx, "users", "d", map[string]any{"animeId": "naruto"}))

	docs, err := x.Query(ctx, "comments", "animeId", "naruto")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "c", docs[1].ID)
	assert.True(t, docs[0].Created.Before(docs[1].Created))

	docs, err = x.Query(ctx, "comments", "animeId", "none")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSQLiteFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "animebay.db")

	x, err := OpenSQLite(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, x.Set(ctx, "users", "u1", map[string]any{"name": "Sora"}))
	require.NoError(t, x.Close())

	x, err = OpenSQLite(ctx, path, nil)
	require.NoError(t, err)
	defer x.Close()

	doc, err := x.Get(ctx, "users", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Sora", doc.Fields["name"])
}

func TestStaticAuth(t *testing.T) {
	t.Parallel()

	_, ok := StaticAuth{}.CurrentUser(context.Background())
	assert.False(t, ok)

	_, ok = StaticAuth{User: &models.User{}}.CurrentUser(context.Background())
	assert.False(t, ok)

	user, ok := StaticAuth{User: &models.User{ID: "u1"}}.CurrentUser(context.Background())
	require.True(t, ok)
	assert.Equal(t, "u1", user.ID)
}
