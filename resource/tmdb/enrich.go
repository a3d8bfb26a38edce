package tmdb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tmdb "github.com/cyruzin/golang-tmdb"

	"github.com/animebay/animebay-scraper/internal/analyze"
	"github.com/animebay/animebay-scraper/internal/errs"
	"github.com/animebay/animebay-scraper/models"
)

// results less alike the site title are ignored
const minSimilarity = 60

// Enricher fills the story and rating the site left empty from the closest
// named TMDB tv show.
type Enricher struct {
	api      *tmdb.Client
	language string
	log      *slog.Logger
}

func New(opts Options) (*Enricher, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	x := &Enricher{
		language: opts.Language,
		log:      opts.Logger.WithGroup("[TMDB]"),
	}
	if strings.TrimSpace(opts.Key) == "" {
		return x, nil
	}

	api, err := tmdb.Init(opts.Key)
	if err != nil {
		return nil, fmt.Errorf("tmdb: %w", err)
	}
	if opts.HTTPClient != nil {
		api.SetClientConfig(*opts.HTTPClient)
	}
	x.api = api

	return x, nil
}

func (x *Enricher) Enabled() bool {
	return x != nil && x.api != nil
}

// Fill reports whether a field was changed. Lookup failures leave details as
// they are.
func (x *Enricher) Fill(ctx context.Context, details *models.AnimeDetails) bool {
	if !x.Enabled() || details == nil || !details.IsLoaded() {
		return false
	}
	if !missing(details.Story) && !missing(details.Rating) {
		return false
	}

	name := analyze.CleanAnimeName(details.Name)
	if missing(name) || name == models.NoName {
		return false
	}

	show, err := x.search(ctx, name)
	if err != nil {
		x.log.Warn("cannot find the anime", "name", name, "error", err)
		return false
	}

	var changed bool
	if missing(details.Story) && strings.TrimSpace(show.story) != "" {
		details.Story = strings.TrimSpace(show.story)
		changed = true
	}
	if missing(details.Rating) && show.rated {
		details.Rating = show.rating
		changed = true
	}

	if changed {
		x.log.Info("anime details were enriched", "name", name, "show", show.name)
	}

	return changed
}

type show struct {
	name   string
	story  string
	rating string
	rated  bool
}

func (x *Enricher) search(ctx context.Context, name string) (*show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := map[string]string{"page": "1"}
	if x.language != "" {
		options["language"] = x.language
	}

	result, err := x.api.GetSearchTVShow(name, options)
	if err != nil {
		return nil, err
	}
	if result == nil || result.SearchTVShowsResults == nil || len(result.Results) == 0 {
		return nil, errs.ErrNotFound
	}

	best, score := -1, float64(0)
	for i, v := range result.Results {
		if n := max(analyze.Similarity(name, v.Name), analyze.Similarity(name, v.OriginalName)); n > score {
			best, score = i, n
		}
	}
	if best < 0 || score < minSimilarity {
		return nil, errs.ErrNotFound
	}

	v := result.Results[best]
	return &show{
		name:   v.Name,
		story:  v.Overview,
		rating: fmt.Sprintf("%.1f", v.VoteAverage),
		rated:  v.VoteCount > 0,
	}, nil
}
