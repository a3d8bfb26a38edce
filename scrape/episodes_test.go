package scrape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animebay/animebay-scraper/models"
)

func openLink(link, label string) string {
	return `<li><a onclick="openEpisode('` + b64(link) + `')" href="#">` + label + `</a></li>`
}

func episodeListPage() string {
	return html(`<ul id="ULEpisodesList">` +
		openLink(testBase+"/episode/naruto-الحلقة-1/", "الحلقة 1") +
		openLink(testBase+"/episode/naruto-الحلقة-2/", "الحلقة 2") +
		openLink("https://witanime.you/episode/naruto-الحلقة-2-5/", "الحلقة 2.5") +
		openLink(testBase+"/episode/naruto-الحلقة-2/", "الحلقة 2") +
		`<li><a onclick="openEpisode('')">broken</a></li>` +
		`<li><a onclick="play()">other</a></li>` +
		`</ul>`)
}

func TestEpisodesSeriesStartsAtFirstEpisode(t *testing.T) {
	t.Parallel()

	first := testBase + "/episode/naruto-الحلقة-1/"
	x, p := newTestSite(map[string]string{
		first: episodeListPage(),
	})

	result := x.Episodes(context.Background(), narutoPage, "TV")
	require.True(t, p.fetched(first))
	assert.Equal(t, []models.Episode{
		{EpisodeNumber: "1", EpisodeURL: testBase + "/episode/naruto-الحلقة-1/", Source: SourceHTML},
		{EpisodeNumber: "2", EpisodeURL: testBase + "/episode/naruto-الحلقة-2/", Source: SourceHTML},
		{EpisodeNumber: "2.5", EpisodeURL: testBase + "/episode/naruto-الحلقة-2-5/", Source: SourceHTML},
	}, result)
}

func TestEpisodesFromEpisodePage(t *testing.T) {
	t.Parallel()

	episode := testBase + "/episode/naruto-الحلقة-7/"
	x, p := newTestSite(map[string]string{
		episode: episodeListPage(),
	})

	assert.Len(t, x.Episodes(context.Background(), episode, "TV"), 3)
	assert.Len(t, p.calls, 1)
}

func TestEpisodesMovie(t *testing.T) {
	t.Parallel()

	movie := testBase + "/anime/naruto-the-movie/"
	x, _ := newTestSite(map[string]string{
		movie: html(`<ul id="ULEpisodesList">` + openLink(testBase+"/episode/naruto-the-movie-الفلم/", "الفلم") + `</ul>`),
	})

	result := x.Episodes(context.Background(), movie, "Movie")
	require.Len(t, result, 1)
	assert.Equal(t, Movie, result[0].EpisodeNumber)
}

func TestEpisodesWithoutList(t *testing.T) {
	t.Parallel()

	first := testBase + "/episode/naruto-الحلقة-1/"
	x, _ := newTestSite(map[string]string{
		first: html(`<a href="/episode/naruto-الحلقة-2/">2</a>`),
	})

	result := x.Episodes(context.Background(), narutoPage, "TV")
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestAnimeEpisodesFallsBackToAnchors(t *testing.T) {
	t.Parallel()

	x, _ := newTestSite(map[string]string{
		narutoPage: html(`<a href="/episode/naruto-الحلقة-1/">الحلقة 1</a>
			<a href="/episode/naruto-الحلقة-2/">الحلقة 2</a>
			<a href="/episode/naruto-الحلقة-2/">الحلقة 2</a>
			<a href="/episode/naruto-الحلقة-3/">شاهد</a>
			<a href="/anime/boruto/">Boruto</a>`),
	})

	result := x.AnimeEpisodes(context.Background(), narutoPage)
	assert.Equal(t, []models.Episode{
		{EpisodeNumber: "1", EpisodeURL: testBase + "/episode/naruto-الحلقة-1/", Source: Source},
		{EpisodeNumber: "2", EpisodeURL: testBase + "/episode/naruto-الحلقة-2/", Source: Source},
		{EpisodeNumber: "1", EpisodeURL: testBase + "/episode/naruto-الحلقة-3/", Source: Source},
	}, result)
}

func TestAnimeEpisodesList(t *testing.T) {
	t.Parallel()

	x, _ := newTestSite(map[string]string{
		narutoPage: episodeListPage(),
	})

	result := x.AnimeEpisodes(context.Background(), narutoPage)
	require.Len(t, result, 3)
	assert.Equal(t, Source, result[0].Source)
}

func TestOpenEpisode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "YWJj", openEpisode("openEpisode('YWJj')"))
	assert.Equal(t, "YWJj", openEpisode("return openEpisode('YWJj'); void(0)"))
	assert.Empty(t, openEpisode("openEpisode()"))
	assert.Empty(t, openEpisode(""))
}
