package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/animebay/animebay-scraper/internal/errs"
	"github.com/animebay/animebay-scraper/models"
)

// Profiles edits the users collection of the signed in user.
type Profiles struct {
	docs Documents
	auth Auth
}

func NewProfiles(docs Documents, auth Auth) *Profiles {
	return &Profiles{docs: docs, auth: auth}
}

func (x *Profiles) user(ctx context.Context) (*models.User, error) {
	user, ok := x.auth.CurrentUser(ctx)
	if !ok {
		return nil, errs.ErrNoUser
	}
	return user, nil
}

// Create stores the first profile of the signed in user from the account.
func (x *Profiles) Create(ctx context.Context) (*models.UserProfile, error) {
	user, err := x.user(ctx)
	if err != nil {
		return nil, err
	}

	profile := models.UserProfile{
		Name:            user.DisplayName,
		Email:           user.Email,
		ProfileImageURL: user.PhotoURL,
	}
	body, err := fields(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadData, err)
	}

	if err = x.docs.Set(ctx, UsersCollection, user.ID, body); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Current returns the stored profile, the email always comes from the account.
func (x *Profiles) Current(ctx context.Context) (*models.UserProfile, error) {
	user, err := x.user(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := x.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	profile.Email = user.Email

	return profile, nil
}

func (x *Profiles) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	doc, err := x.docs.Get(ctx, UsersCollection, uid)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err = doc.Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: profile %s: %v", errs.ErrBadData, uid, err)
	}
	return &profile, nil
}

func (x *Profiles) UpdateName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrBadData)
	}
	return x.update(ctx, "name", name)
}

func (x *Profiles) UpdateBio(ctx context.Context, bio string) error {
	return x.update(ctx, "bio", strings.TrimSpace(bio))
}

func (x *Profiles) UpdateImage(ctx context.Context, link string) error {
	link = strings.TrimSpace(link)
	if !strings.HasPrefix(link, "http") {
		return fmt.Errorf("%w: image link %q", errs.ErrBadData, link)
	}
	return x.update(ctx, "profileImageUrl", link)
}

func (x *Profiles) update(ctx context.Context, field, value string) error {
	user, err := x.user(ctx)
	if err != nil {
		return err
	}
	return x.docs.Update(ctx, UsersCollection, user.ID, map[string]any{field: value})
}
