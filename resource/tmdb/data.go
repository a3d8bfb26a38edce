package tmdb

import (
	"log/slog"
	"net/http"

	"github.com/animebay/animebay-scraper/models"
)

type Options struct {
	// Key is the TMDB v3 api key, the enricher does nothing without it.
	Key        string
	Language   string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

var placeholders = map[string]bool{
	"":                  true,
	models.Loading:      true,
	models.Ellipsis:     true,
	models.NotAvailable: true,
	models.NoStory:      true,
}

func missing(v string) bool {
	return placeholders[v]
}
