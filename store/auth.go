package store

import (
	"context"

	"github.com/animebay/animebay-scraper/models"
)

// StaticAuth always reports the same user, none when User is nil.
type StaticAuth struct {
	User *models.User
}

func (x StaticAuth) CurrentUser(context.Context) (*models.User, bool) {
	if x.User == nil || x.User.ID == "" {
		return nil, false
	}
	user := *x.User
	return &user, true
}
