package scrape

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/animebay/animebay-scraper/models"
)

// Search lists the anime cards matching query. The link of each result is the
// anime page, not an episode, so EpisodeNumber stays empty.
func (x *WitAnime) Search(ctx context.Context, query string) []models.Episode {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Episode{}
	}

	link := x.site.Base() + "/?search_param=animes&s=" + url.QueryEscape(query)
	doc := x.document(ctx, link, "")
	if doc == nil {
		x.log.Error("cannot fetch the search page", "query", query)
		return []models.Episode{}
	}

	result := collect(doc.Find("div.anime-list-content div.row > div"), func(i int, s *goquery.Selection) mo.Option[models.Episode] {
		var (
			name  = text(s.Find("div.anime-card-title h3 a").First())
			image = x.site.Resolve(attr(s.Find("div.anime-card-poster img").First(), "src"))
			page  = x.site.Resolve(attr(s.Find("div.anime-card-poster a").First(), "href"))
		)
		if name == "" || image == "" || page == "" {
			x.log.Error("skipping incomplete search card", "index", i)
			return mo.None[models.Episode]()
		}

		return mo.Some(models.Episode{
			AnimeName:  name,
			ImageURL:   image,
			EpisodeURL: page,
			Source:     Source,
		})
	})

	result = lo.UniqBy(result, func(v models.Episode) string {
		return v.AnimeName
	})
	if len(result) == 0 {
		x.log.Info("there is no results for this query", "query", query)
		return []models.Episode{}
	}

	return result
}
