package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/animebay/animebay-scraper/client"
	"github.com/animebay/animebay-scraper/internal/config"
	"github.com/animebay/animebay-scraper/resource/tmdb"
	"github.com/animebay/animebay-scraper/scrape"
	"github.com/animebay/animebay-scraper/store"
)

// Open builds every collaborator from cfg. auth is the signed in user of the
// comment operations.
func Open(ctx context.Context, cfg *config.Config, auth store.Auth, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if auth == nil {
		auth = store.StaticAuth{}
	}

	var proxy *url.URL
	if cfg.Proxy != "" {
		u, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("proxy_url: %w", err)
		}
		proxy = u
	}

	fetch := client.New(client.Options{
		UserAgent:      cfg.UserAgent,
		Referer:        cfg.BaseURL + "/",
		ConnectTimeout: cfg.ConnectTimeout.Duration,
		ReadTimeout:    cfg.ReadTimeout.Duration,
		Proxy:          proxy,
		Logger:         logger,
	})

	site := scrape.NewWitAnime(fetch, scrape.Options{
		BaseURL:    cfg.BaseURL,
		LegacyHost: cfg.LegacyHost,
		Fanout:     cfg.Fanout,
		Logger:     logger,
	})

	enrich, err := tmdb.New(tmdb.Options{
		Key:      cfg.TMDBKey,
		Language: "ar-SA",
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	db, err := store.OpenSQLite(ctx, cfg.StorePath, logger)
	if err != nil {
		return nil, err
	}

	x := New(site, store.NewComments(db, auth, logger), enrich, logger)
	x.profiles = store.NewProfiles(db, auth)
	x.closer = db

	return x, nil
}
