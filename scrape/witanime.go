package scrape

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/animebay/animebay-scraper/internal/analyze"
)

type Options struct {
	BaseURL    string
	LegacyHost string
	// Fanout bounds the concurrent episode page fetches of LatestEpisodes,
	// 0 runs one per card.
	Fanout int
	Logger *slog.Logger
}

// WitAnime runs every page operation against one site. Operations never fail:
// a page that cannot be fetched gives an empty list, or nil for Details.
type WitAnime struct {
	fetch  Fetcher
	site   Resolver
	fanout int
	log    *slog.Logger
}

func NewWitAnime(fetch Fetcher, opts Options) *WitAnime {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &WitAnime{
		fetch:  fetch,
		site:   NewResolver(opts.BaseURL, opts.LegacyHost),
		fanout: opts.Fanout,
		log:    opts.Logger.WithGroup("[WIT-ANIME]"),
	}
}

func (x *WitAnime) Site() Resolver {
	return x.site
}

func (x *WitAnime) document(ctx context.Context, link, referer string) *goquery.Document {
	if x.fetch == nil || link == "" {
		return nil
	}
	return x.fetch.Document(ctx, link, referer)
}

func isEpisodePage(link string) bool {
	return strings.Contains(link, "/episode/")
}

func attr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.TrimSpace(v)
}

func text(s *goquery.Selection) string {
	return analyze.CleanUnicode(s.Text())
}
