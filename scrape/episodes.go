package scrape

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/animebay/animebay-scraper/internal/analyze"
	"github.com/animebay/animebay-scraper/internal/decode"
	"github.com/animebay/animebay-scraper/models"
)

const (
	Movie = "الفلم"

	episodeList = "ul#ULEpisodesList li a"
)

// Episodes lists every episode of an anime. Series are read from their first
// episode page, movies from the given page.
func (x *WitAnime) Episodes(ctx context.Context, link, kind string) []models.Episode {
	link = x.site.Resolve(link)
	if link == "" {
		return []models.Episode{}
	}

	page := link
	if !models.IsMovie(kind) && !isEpisodePage(link) {
		page = x.site.Episode(analyze.ExtractSlug(link), "1")
	}

	doc := x.document(ctx, page, "")
	if doc == nil {
		x.log.Error("cannot fetch the episodes page", "url", page)
		return []models.Episode{}
	}

	list := doc.Find(episodeList)
	if list.Length() == 0 {
		x.log.Error("the page has no episode list", "url", page)
		return []models.Episode{}
	}

	return x.episodeList(list, SourceHTML)
}

// AnimeEpisodes reads the episode list of the page itself. Pages without the
// encoded list fall back to their plain episode anchors.
func (x *WitAnime) AnimeEpisodes(ctx context.Context, link string) []models.Episode {
	link = x.site.Resolve(link)

	doc := x.document(ctx, link, "")
	if doc == nil {
		x.log.Error("cannot fetch the anime page", "url", link)
		return []models.Episode{}
	}

	if list := doc.Find(episodeList); list.Length() > 0 {
		return x.episodeList(list, Source)
	}

	result := collect(doc.Find("a[href*='/episode/']"), func(_ int, s *goquery.Selection) mo.Option[models.Episode] {
		href := x.site.Resolve(attr(s, "href"))
		if href == "" {
			return mo.None[models.Episode]()
		}
		return mo.Some(models.Episode{
			EpisodeNumber: analyze.ExtractDecimal(text(s)),
			EpisodeURL:    href,
			Source:        Source,
		})
	})

	return lo.UniqBy(result, func(v models.Episode) string {
		return v.EpisodeURL
	})
}

func (x *WitAnime) episodeList(list *goquery.Selection, source string) []models.Episode {
	result := collect(list, func(i int, s *goquery.Selection) mo.Option[models.Episode] {
		token := openEpisode(attr(s, "onclick"))
		if token == "" {
			return mo.None[models.Episode]()
		}

		link, err := decode.Base64(token)
		if err != nil || strings.TrimSpace(link) == "" {
			x.log.Error("cannot decode the episode link", "index", i, "error", err)
			return mo.None[models.Episode]()
		}

		return mo.Some(models.Episode{
			EpisodeNumber: episodeNumber(text(s)),
			EpisodeURL:    x.site.Resolve(link),
			Source:        source,
		})
	})

	return lo.UniqBy(result, func(v models.Episode) string {
		return v.EpisodeURL
	})
}

// openEpisode returns the argument of an openEpisode('...') handler.
func openEpisode(handler string) string {
	_, after, ok := strings.Cut(handler, "openEpisode('")
	if !ok {
		return ""
	}
	token, _, _ := strings.Cut(after, "')")
	return strings.TrimSpace(token)
}

func episodeNumber(label string) string {
	if strings.Contains(label, Movie) {
		return Movie
	}
	return analyze.ExtractDecimal(label)
}
