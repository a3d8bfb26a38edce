package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/animebay/animebay-scraper/internal/errs"
	"github.com/animebay/animebay-scraper/models"
)

// DefaultUserName signs comments of users without any name.
const DefaultUserName = "مستخدم أنمي باي"

type Comments struct {
	docs Documents
	auth Auth
	log  *slog.Logger
}

func NewComments(docs Documents, auth Auth, logger *slog.Logger) *Comments {
	if logger == nil {
		logger = slog.Default()
	}
	return &Comments{
		docs: docs,
		auth: auth,
		log:  logger.WithGroup("[COMMENTS]"),
	}
}

// List returns the comments of an anime, newest first.
func (x *Comments) List(ctx context.Context, animeID string) ([]models.Comment, error) {
	docs, err := x.docs.Query(ctx, CommentsCollection, "animeId", animeID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Comment, 0, len(docs))
	for _, v := range docs {
		var c models.Comment
		if err = v.Decode(&c); err != nil {
			x.log.Error("skipping unreadable comment", "id", v.ID, "error", err)
			continue
		}
		c.ID = v.ID
		c.Timestamp = v.Created
		result = append(result, c)
	}

	slices.SortStableFunc(result, func(a, b models.Comment) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return result, nil
}

// Add posts text as the signed in user.
func (x *Comments) Add(ctx context.Context, animeID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.TrimSpace(animeID) == "" {
		return nil, fmt.Errorf("%w: empty comment", errs.ErrBadData)
	}

	user, ok := x.auth.CurrentUser(ctx)
	if !ok {
		return nil, errs.ErrNoUser
	}

	comment := models.Comment{
		ID:      uuid.NewString(),
		Text:    text,
		AnimeID: animeID,
		UserID:  user.ID,
	}
	comment.UserName, comment.UserProfilePic = x.author(ctx, user)

	body, err := fields(comment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadData, err)
	}
	delete(body, "timestamp")

	if err = x.docs.Set(ctx, CommentsCollection, comment.ID, body); err != nil {
		return nil, err
	}

	if doc, err := x.docs.Get(ctx, CommentsCollection, comment.ID); err == nil {
		comment.Timestamp = doc.Created
	}

	x.log.Info("comment was added", "anime", animeID, "id", comment.ID)
	return &comment, nil
}

// author prefers the stored profile, then the auth account.
func (x *Comments) author(ctx context.Context, user *models.User) (string, *string) {
	var profile models.UserProfile
	if doc, err := x.docs.Get(ctx, UsersCollection, user.ID); err == nil && doc.Decode(&profile) == nil {
		name := profile.Name
		if name == "" {
			name = DefaultUserName
		}
		return name, optional(profile.ProfileImageURL)
	}

	name := user.DisplayName
	if name == "" {
		name = DefaultUserName
	}
	return name, optional(user.PhotoURL)
}

func (x *Comments) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty comment id", errs.ErrBadData)
	}
	return x.docs.Delete(ctx, CommentsCollection, id)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
