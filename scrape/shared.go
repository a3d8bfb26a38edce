package scrape

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"
)

const (
	Source     = "WitAnime"
	SourceHTML = "WitAnime (HTML)"
)

// Fetcher returns the parsed page at link or nil when it could not be
// fetched. *client.Client satisfies it.
type Fetcher interface {
	Document(ctx context.Context, link, referer string) *goquery.Document
}

// collect keeps the items fn could parse.
func collect[T any](sel *goquery.Selection, fn func(int, *goquery.Selection) mo.Option[T]) []T {
	var result []T
	sel.Each(func(i int, s *goquery.Selection) {
		if v, ok := fn(i, s).Get(); ok {
			result = append(result, v)
		}
	})
	return result
}
