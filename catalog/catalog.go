// Package catalog is what a front end talks to: the site operations plus the
// details page sequence that also loads comments.
package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/animebay/animebay-scraper/internal/analyze"
	"github.com/animebay/animebay-scraper/internal/errs"
	"github.com/animebay/animebay-scraper/models"
	"github.com/animebay/animebay-scraper/resource/tmdb"
	"github.com/animebay/animebay-scraper/scrape"
	"github.com/animebay/animebay-scraper/store"
)

type Anime struct {
	// ID keys the comments of the anime, it is the resolved link.
	ID          string              `json:"ID"`
	Details     models.AnimeDetails `json:"Details"`
	NextEpisode *time.Time          `json:"NextEpisode,omitempty"`
	Comments    []models.Comment    `json:"Comments"`
}

type Catalog struct {
	*scrape.WitAnime

	comments *store.Comments
	profiles *store.Profiles
	enrich   *tmdb.Enricher
	closer   io.Closer
	log      *slog.Logger
}

// New wires the collaborators, comments and enrich may be nil.
func New(site *scrape.WitAnime, comments *store.Comments, enrich *tmdb.Enricher, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		WitAnime: site,
		comments: comments,
		enrich:   enrich,
		log:      logger.WithGroup("[CATALOG]"),
	}
}

// Anime loads the details of link then its comments. It is nil only when the
// details could not be read, comment failures give an empty list.
func (x *Catalog) Anime(ctx context.Context, link string) *Anime {
	details := x.Details(ctx, link)
	if details == nil {
		return nil
	}

	x.enrich.Fill(ctx, details)

	anime := &Anime{
		ID:      x.Site().Resolve(link),
		Details: *details,
	}
	if details.LatestEpisodePublishedAt != nil {
		if next, ok := analyze.NextEpisode(*details.LatestEpisodePublishedAt); ok {
			anime.NextEpisode = &next
		}
	}
	anime.Comments = x.Comments(ctx, anime.ID)

	return anime
}

func (x *Catalog) Comments(ctx context.Context, animeID string) []models.Comment {
	if x.comments == nil {
		return []models.Comment{}
	}

	result, err := x.comments.List(ctx, animeID)
	if err != nil {
		x.log.Error("cannot load the comments", "anime", animeID, "error", err)
		return []models.Comment{}
	}
	return result
}

// Comment posts text on the anime and returns the refreshed list.
func (x *Catalog) Comment(ctx context.Context, link, text string) ([]models.Comment, error) {
	if x.comments == nil {
		return nil, errs.ErrDisabled
	}

	id := x.Site().Resolve(link)
	if _, err := x.comments.Add(ctx, id, text); err != nil {
		return nil, err
	}
	return x.Comments(ctx, id), nil
}

func (x *Catalog) Uncomment(ctx context.Context, id string) error {
	if x.comments == nil {
		return errs.ErrDisabled
	}
	return x.comments.Delete(ctx, id)
}

// Profile returns the profile of the signed in user. The first call creates
// it from the account.
func (x *Catalog) Profile(ctx context.Context) (*models.UserProfile, error) {
	if x.profiles == nil {
		return nil, errs.ErrDisabled
	}

	profile, err := x.profiles.Current(ctx)
	if errors.Is(err, errs.ErrNotFound) {
		x.log.Info("creating the profile of the signed in user")
		return x.profiles.Create(ctx)
	}
	return profile, err
}

// UpdateProfile changes the non empty fields and returns the stored profile.
func (x *Catalog) UpdateProfile(ctx context.Context, name, bio, image string) (*models.UserProfile, error) {
	if _, err := x.Profile(ctx); err != nil {
		return nil, err
	}

	if name != "" {
		if err := x.profiles.UpdateName(ctx, name); err != nil {
			return nil, err
		}
	}
	if bio != "" {
		if err := x.profiles.UpdateBio(ctx, bio); err != nil {
			return nil, err
		}
	}
	if image != "" {
		if err := x.profiles.UpdateImage(ctx, image); err != nil {
			return nil, err
		}
	}

	return x.profiles.Current(ctx)
}

// Close releases the store opened by Open.
func (x *Catalog) Close() error {
	if x.closer == nil {
		return nil
	}
	return x.closer.Close()
}
