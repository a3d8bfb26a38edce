package scrape

import (
	"context"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"

	"github.com/animebay/animebay-scraper/internal/analyze"
	"github.com/animebay/animebay-scraper/models"
)

func (x *WitAnime) latestPage(page int) string {
	if page <= 1 {
		return x.site.Base() + "/episode/"
	}
	return x.site.Base() + "/episode/page/" + strconv.Itoa(page) + "/"
}

// LatestEpisodes reads one page of the latest episodes listing, then fetches
// every episode page concurrently for its publish date. Results keep the card
// order and a failed date lookup only leaves PublishedAt nil.
func (x *WitAnime) LatestEpisodes(ctx context.Context, page int) []models.Episode {
	listing := x.latestPage(page)

	doc := x.document(ctx, listing, "")
	if doc == nil {
		x.log.Error("cannot fetch the latest episodes", "page", page)
		return []models.Episode{}
	}

	cards := collect(doc.Find("div.anime-list-content div.row > div"), func(i int, s *goquery.Selection) mo.Option[models.Episode] {
		var (
			name   = analyze.CleanAnimeName(text(s.Find("div.anime-card-title h3 a").First()))
			number = text(s.Find("div.episodes-card-title h3 a").First())
			image  = x.site.Resolve(attr(s.Find("img.img-responsive").First(), "src"))
			link   = x.site.Resolve(attr(s.Find("div.episodes-card-title h3 a").First(), "href"))
		)
		if name == "" || number == "" || image == "" || link == "" {
			x.log.Error("skipping incomplete episode card", "index", i)
			return mo.None[models.Episode]()
		}

		return mo.Some(models.Episode{
			AnimeName:     name,
			EpisodeNumber: analyze.ExtractEpisode(number),
			ImageURL:      image,
			EpisodeURL:    link,
			Source:        Source,
		})
	})

	dates := make([]mo.Option[string], len(cards))

	g, gctx := errgroup.WithContext(ctx)
	if x.fanout > 0 {
		g.SetLimit(x.fanout)
	}
	for i, v := range cards {
		g.Go(func() error {
			episode := x.document(gctx, v.EpisodeURL, listing)
			if episode == nil {
				x.log.Error("cannot fetch the episode page", "url", v.EpisodeURL)
				return nil
			}
			if date := published(episode); date != nil {
				dates[i] = mo.Some(*date)
				return nil
			}
			x.log.Error("the episode page has no publish date", "url", v.EpisodeURL)
			return nil
		})
	}
	_ = g.Wait()

	for i := range cards {
		if date, ok := dates[i].Get(); ok {
			cards[i].PublishedAt = &date
		}
	}

	return lo.UniqBy(cards, func(v models.Episode) string {
		return v.AnimeName
	})
}
