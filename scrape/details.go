package scrape

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"

	"github.com/animebay/animebay-scraper/internal/analyze"
	"github.com/animebay/animebay-scraper/models"
)

// labels of the anime-info blocks
const (
	labelEpisodes = "عدد الحلقات:"
	labelType     = "النوع"
	labelRating   = "التقييم العالمي"
	labelDuration = "مدة الحلقة"
	labelSource   = "المصدر"
	labelStatus   = "حالة الأنمي"
)

// Details reads the anime page behind link, which may also be one of its
// episode pages. The latest episode date is best effort, only a failed fetch
// of the first page or the anime page gives nil.
func (x *WitAnime) Details(ctx context.Context, link string) *models.AnimeDetails {
	initial := x.site.Resolve(link)
	if initial == "" {
		return nil
	}

	doc := x.document(ctx, initial, "")
	if doc == nil {
		x.log.Error("cannot fetch the anime page", "url", initial)
		return nil
	}

	var (
		main = initial
		date *string
	)
	if isEpisodePage(initial) {
		if v := x.site.Resolve(attr(doc.Find("div.anime-page-link a").First(), "href")); v != "" {
			main = v
		}
		x.log.Debug("resolved the anime page from an episode", "url", main)
	} else {
		date = x.lastEpisodeDate(ctx, doc, initial)
	}

	if date == nil {
		x.log.Debug("falling back to the date of the fetched page", "url", initial)
		date = published(doc)
	}

	page := doc
	if main != initial {
		if page = x.document(ctx, main, ""); page == nil {
			x.log.Error("cannot fetch the anime page", "url", main)
			return nil
		}
	}

	details := x.details(page)
	details.LatestEpisodePublishedAt = date

	return &details
}

// lastEpisodeDate builds the link of the last episode from the episode count
// and reads its publish date.
func (x *WitAnime) lastEpisodeDate(ctx context.Context, doc *goquery.Document, link string) *string {
	count := analyze.ExtractDigits(infoField(doc.Find("div.anime-info"), labelEpisodes, ""))
	if count == "" {
		x.log.Debug("the anime page has no episode count", "url", link)
		return nil
	}

	last := x.site.Episode(analyze.ExtractSlug(link), count)
	page := x.document(ctx, last, link)
	if page == nil {
		x.log.Debug("cannot fetch the last episode", "url", last)
		return nil
	}

	return published(page)
}

func (x *WitAnime) details(doc *goquery.Document) models.AnimeDetails {
	info := doc.Find("div.anime-info")

	name := text(doc.Find("h1.anime-details-title").First())
	if name == "" {
		name = models.NoName
	}
	story := text(doc.Find("p.anime-story").First())
	if story == "" {
		story = models.NoStory
	}

	return models.AnimeDetails{
		Name:     name,
		ImageURL: x.site.Resolve(attr(doc.Find("div.anime-thumbnail img").First(), "src")),
		Story:    story,
		Genres: lo.Compact(doc.Find("ul.anime-genres a").Map(func(_ int, s *goquery.Selection) string {
			return text(s)
		})),
		Rating:          infoField(info, labelRating, models.NotAvailable),
		EpisodeDuration: infoField(info, labelDuration, models.NotAvailable),
		Source:          infoField(info, labelSource, models.NotAvailable),
		Type:            infoField(info, labelType, models.DefaultType),
		Status:          infoField(info, labelStatus, models.NoStatus),
	}
}

// infoField returns the value of the first block starting with label.
func infoField(info *goquery.Selection, label, fallback string) string {
	var value string
	info.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v := text(s); strings.HasPrefix(v, label) {
			value = analyze.ExtractField(v)
			return false
		}
		return true
	})
	if value == "" {
		return fallback
	}
	return value
}
