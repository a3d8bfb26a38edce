package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/animebay/animebay-scraper/internal/analyze"
	"github.com/animebay/animebay-scraper/internal/decode"
	"github.com/animebay/animebay-scraper/models"
)

// Servers recovers the embed links of an episode page from both script
// schemes the site uses and keeps one server per link.
func (x *WitAnime) Servers(ctx context.Context, link string) []models.Server {
	link = x.site.Resolve(link)

	doc := x.document(ctx, link, "")
	if doc == nil {
		x.log.Error("cannot fetch the episode page", "url", link)
		return []models.Server{}
	}

	var (
		body   = scripts(doc)
		result = append(x.streamServers(doc, body), x.complexServers(body)...)
	)

	result = lo.UniqBy(result, func(v models.Server) string {
		return v.EmbedURL
	})
	if len(result) == 0 {
		x.log.Info("there is no servers for this episode", "url", link)
	}

	return result
}

func (x *WitAnime) streamServers(doc *goquery.Document, body []string) []models.Server {
	script, ok := lo.Find(body, func(v string) bool {
		return strings.Contains(v, streamMarker)
	})
	if !ok {
		return nil
	}

	fields, ok := streamScript(script).Get()
	if !ok {
		x.log.Error("cannot read the stream servers script")
		return nil
	}

	names := doc.Find("ul#episode-servers li a span.ser").Map(func(_ int, s *goquery.Selection) string {
		return text(s)
	})

	var result []models.Server
	for i, token := range fields.Tokens {
		if i >= len(names) {
			break
		}

		embed, err := decode.Stream(token, fields.Key)
		if err != nil {
			x.log.Error("cannot decode the server link", "server", names[i], "error", err)
			continue
		}
		if embed == "" {
			continue
		}

		result = append(result, models.Server{
			Name:     names[i],
			EmbedURL: embed,
			Quality:  analyze.ExtractNameQuality(names[i]),
		})
	}

	return result
}

func (x *WitAnime) complexServers(body []string) []models.Server {
	script, ok := lo.Find(body, func(v string) bool {
		return strings.Contains(v, "_zG") && strings.Contains(v, "_zH")
	})
	if !ok {
		return nil
	}

	fields, ok := complexScript(script).Get()
	if !ok {
		x.log.Error("cannot read the complex servers script")
		return nil
	}

	registry, err := decode.Registry(fields.Registry)
	if err != nil {
		x.log.Error("cannot decode the resource registry", "error", err)
		return nil
	}

	records, err := decode.Configs(fields.Config)
	if err != nil {
		x.log.Error("cannot decode the config registry", "error", err)
		return nil
	}

	configs := lo.FilterMap(records, func(v mo.Result[decode.Config], i int) (decode.Config, bool) {
		if v.IsError() {
			x.log.Error("skipping malformed config", "index", i, "error", v.Error())
			return decode.Config{}, false
		}
		return v.MustGet(), true
	})

	return lo.Map(decode.ComplexAll(registry, configs), func(embed string, _ int) models.Server {
		quality := analyze.ExtractLinkQuality(embed)
		return models.Server{
			Name:     fmt.Sprintf("%s (%s)", analyze.ExtractServer(embed), quality),
			EmbedURL: embed,
			Quality:  quality,
		}
	})
}
