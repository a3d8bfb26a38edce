package scrape

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"

	"github.com/animebay/animebay-scraper/models"
)

// Schedule reads the weekly airing schedule. Days without a name or without
// any complete card are left out.
func (x *WitAnime) Schedule(ctx context.Context) []models.DailySchedule {
	link := x.site.Base() + "/مواعيد-الحلقات/"

	doc := x.document(ctx, link, "")
	if doc == nil {
		x.log.Error("cannot fetch the schedule page", "url", link)
		return []models.DailySchedule{}
	}

	result := collect(doc.Find("div.main-widget"), func(_ int, w *goquery.Selection) mo.Option[models.DailySchedule] {
		day := text(w.Find("div.main-didget-head h3").First())
		if day == "" {
			return mo.None[models.DailySchedule]()
		}

		animes := collect(w.Find("div.anime-card-container"), func(i int, s *goquery.Selection) mo.Option[models.ScheduleAnime] {
			return x.scheduleCard(day, i, s)
		})
		if len(animes) == 0 {
			return mo.None[models.DailySchedule]()
		}

		return mo.Some(models.DailySchedule{
			Day:    day,
			Animes: animes,
		})
	})
	if result == nil {
		return []models.DailySchedule{}
	}

	return result
}

func (x *WitAnime) scheduleCard(day string, i int, s *goquery.Selection) mo.Option[models.ScheduleAnime] {
	var (
		title = s.Find("div.anime-card-title").First()
		a     = title.Find("h3 a").First()
		name  = text(a)
		page  = x.site.Resolve(attr(a, "href"))
		image = x.site.Resolve(attr(s.Find("div.anime-card-poster img").First(), "src"))
	)
	if name == "" || page == "" || image == "" {
		x.log.Error("skipping incomplete schedule card", "day", day, "index", i)
		return mo.None[models.ScheduleAnime]()
	}

	card := models.ScheduleAnime{
		Name:     name,
		ImageURL: image,
		AnimeURL: page,
	}
	if v := attr(title, "data-content"); v != "" {
		card.Description = &v
	}

	return mo.Some(card)
}
