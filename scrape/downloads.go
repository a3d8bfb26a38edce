package scrape

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/animebay/animebay-scraper/internal/analyze"
	"github.com/animebay/animebay-scraper/models"
)

// first match wins
var downloadSections = [4]string{
	".download-links",
	".episode-downloads",
	".download-section",
	".links-download",
}

// Downloads lists the file host links of an episode page, quality grouped
// sections first. Only allowed hosts are kept.
func (x *WitAnime) Downloads(ctx context.Context, link string) []models.DownloadLink {
	link = x.site.Resolve(link)

	doc := x.document(ctx, link, "")
	if doc == nil {
		x.log.Error("cannot fetch the episode page", "url", link)
		return []models.DownloadLink{}
	}

	var result []models.DownloadLink
	if section := downloadSection(doc); section != nil {
		section.Find(".quality-section, .download-quality, .quality-group").Each(func(_ int, s *goquery.Selection) {
			quality := analyze.ExtractQuality(text(s.Find(".quality-title, h3, h4, .quality-name").First()))
			result = append(result, collect(s.Find("a[href]"), func(_ int, a *goquery.Selection) mo.Option[models.DownloadLink] {
				return x.download(a, quality, text(a))
			})...)
		})
	}

	// a page without a usable section still lists its hosts somewhere
	if len(result) == 0 {
		result = collect(doc.Find("a[href]"), func(_ int, a *goquery.Selection) mo.Option[models.DownloadLink] {
			return x.download(a, analyze.ExtractQuality(text(a)), "")
		})
	}

	return lo.UniqBy(result, func(v models.DownloadLink) string {
		return v.URL
	})
}

func downloadSection(doc *goquery.Document) *goquery.Selection {
	for _, v := range downloadSections {
		if s := doc.Find(v).First(); s.Length() > 0 {
			return s
		}
	}
	return nil
}

// download keeps an allowed host link, label falls back to the host name.
func (x *WitAnime) download(a *goquery.Selection, quality, label string) mo.Option[models.DownloadLink] {
	link := x.site.Resolve(attr(a, "href"))

	host, ok := analyze.ExtractDownloadHost(link)
	if !ok {
		return mo.None[models.DownloadLink]()
	}

	if label == "" {
		label = host
	}

	return mo.Some(models.DownloadLink{
		Host:    label,
		URL:     link,
		Quality: quality,
	})
}
