// Package store holds the user side collaborators: a document store, the
// signed in user and the comment and profile repositories built on them.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/animebay/animebay-scraper/models"
)

const (
	CommentsCollection = "comments"
	UsersCollection    = "users"
)

type Document struct {
	ID      string
	Fields  map[string]any
	Created time.Time
}

// Decode fills v from the document fields through their JSON form.
func (d Document) Decode(v any) error {
	data, err := json.Marshal(d.Fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Documents is a collection/id keyed JSON document store. Get and Update of a
// missing document fail with errs.ErrNotFound, Delete does not.
type Documents interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	Set(ctx context.Context, collection, id string, fields map[string]any) error
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, collection, field, value string) ([]Document, error)
}

type Auth interface {
	CurrentUser(ctx context.Context) (*models.User, bool)
}

func fields(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err = json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
