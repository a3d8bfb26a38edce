package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animebay/animebay-scraper/internal/errs"
	"github.com/animebay/animebay-scraper/models"
)

const naruto = "https://witanime.red/anime/naruto/"

func TestCommentsFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	docs := newTestStore(t)
	auth := StaticAuth{User: &models.User{ID: "u1", Email: "sora@example.com", DisplayName: "Sora"}}
	x := NewComments(docs, auth, nil)

	first, err := x.Add(ctx, naruto, "  أول تعليق  ")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "أول تعليق", first.Text)
	assert.Equal(t, "Sora", first.UserName)
	assert.Nil(t, first.UserProfilePic)
	assert.False(t, first.Timestamp.IsZero())

	second, err := x.Add(ctx, naruto, "second")
	require.NoError(t, err)
	_, err = x.Add(ctx, "https://witanime.red/anime/bleach/", "other anime")
	require.NoError(t, err)

	list, err := x.List(ctx, naruto)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "u1", list[1].UserID)
	assert.Equal(t, naruto, list[1].AnimeID)
	assert.Equal(t, first.Timestamp, list[1].Timestamp)

	require.NoError(t, x.Delete(ctx, first.ID))
	list, err = x.List(ctx, naruto)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestCommentsAuthor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	docs := newTestStore(t)

	anonymous := NewComments(docs, StaticAuth{User: &models.User{ID: "u2"}}, nil)
	c, err := anonymous.Add(ctx, naruto, "hi")
	require.NoError(t, err)
	assert.Equal(t, DefaultUserName, c.UserName)

	require.NoError(t, docs.Set(ctx, UsersCollection, "u3", map[string]any{
		"name":            "Shiro",
		"profileImageUrl": "https://img.example/shiro.png",
	}))
	stored := NewComments(docs, StaticAuth{User: &models.User{ID: "u3", DisplayName: "ignored", PhotoURL: "https://img.example/x.png"}}, nil)
	c, err = stored.Add(ctx, naruto, "hi")
	require.NoError(t, err)
	assert.Equal(t, "Shiro", c.UserName)
	require.NotNil(t, c.UserProfilePic)
	assert.Equal(t, "https://img.example/shiro.png", *c.UserProfilePic)

	require.NoError(t, docs.Set(ctx, UsersCollection, "u4", map[string]any{"email": "x@example.com"}))
	unnamed := NewComments(docs, StaticAuth{User: &models.User{ID: "u4", DisplayName: "ignored"}}, nil)
	c, err = unnamed.Add(ctx, naruto, "hi")
	require.NoError(t, err)
	assert.Equal(t, DefaultUserName, c.UserName)
}

func TestCommentsRejects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	docs := newTestStore(t)

	_, err := NewComments(docs, StaticAuth{}, nil).Add(ctx, naruto, "hi")
	require.ErrorIs(t, err, errs.ErrNoUser)

	x := NewComments(docs, StaticAuth{User: &models.User{ID: "u1"}}, nil)
	_, err = x.Add(ctx, naruto, "   ")
	require.ErrorIs(t, err, errs.ErrBadData)
	_, err = x.Add(ctx, "", "hi")
	require.ErrorIs(t, err, errs.ErrBadData)
	require.ErrorIs(t, x.Delete(ctx, ""), errs.ErrBadData)

	list, err := x.List(ctx, naruto)
	require.NoError(t, err)
	assert.Empty(t, list)
}
