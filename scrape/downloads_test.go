package scrape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animebay/animebay-scraper/models"
)

func TestDownloadsSections(t *testing.T) {
	t.Parallel()

	episode := testBase + "/episode/a-الحلقة-1/"
	x, _ := newTestSite(map[string]string{
		episode: html(`<div class="episode-downloads">
			<div class="quality-section"><h4>الجودة FHD</h4>
				<a href="https://www.mediafire.com/file/abc">Mediafire</a>
				<a href="https://example.com/other">Other</a>
			</div>
			<div class="quality-group"><span class="quality-name">SD 480p</span>
				<a href="https://gofile.io/d/xyz"></a>
				<a href="https://www.mediafire.com/file/abc">Mediafire</a>
			</div>
			<div class="quality-group"><h3>low</h3>
				<a href="https://mega.nz/file/m1">Mega</a>
			</div>
		</div>
		<a href="https://workupload.com/file/outside">outside</a>`),
	})

	result := x.Downloads(context.Background(), episode)
	assert.Equal(t, []models.DownloadLink{
		{Host: "Mediafire", URL: "https://www.mediafire.com/file/abc", Quality: "FHD"},
		{Host: "gofile", URL: "https://gofile.io/d/xyz", Quality: "SD"},
		{Host: "Mega", URL: "https://mega.nz/file/m1", Quality: "Unknown"},
	}, result)
}

func TestDownloadsFallsBackToAnchors(t *testing.T) {
	t.Parallel()

	episode := testBase + "/episode/b-الحلقة-2/"
	x, _ := newTestSite(map[string]string{
		episode: html(`<div class="download-links"></div>
			<ul>
				<li><a href="https://www.mp4upload.com/x1">تحميل HD</a></li>
				<li><a href="https://workupload.com/file/w1">SD</a></li>
				<li><a href="https://www.mp4upload.com/x1">FHD again</a></li>
				<li><a href="/episode/b-الحلقة-3/">next</a></li>
				<li><a href="https://example.com/page">mega</a></li>
			</ul>`),
	})

	result := x.Downloads(context.Background(), episode)
	require.Len(t, result, 2)
	assert.Equal(t, models.DownloadLink{Host: "mp4upload", URL: "https://www.mp4upload.com/x1", Quality: "HD"}, result[0])
	assert.Equal(t, models.DownloadLink{Host: "workupload", URL: "https://workupload.com/file/w1", Quality: "SD"}, result[1])
}

func TestDownloadsIgnoresSiteLinks(t *testing.T) {
	t.Parallel()

	episode := testBase + "/episode/c-الحلقة-1/"
	x, _ := newTestSite(map[string]string{
		episode: html(`<a href="/anime/megalobox/">Megalobox</a>
			<a href="/tag/gofile-guide/">gofile</a>
			<a href="https://gofile.io/d/g1">HD</a>`),
	})

	assert.Equal(t, []models.DownloadLink{
		{Host: "gofile", URL: "https://gofile.io/d/g1", Quality: "HD"},
	}, x.Downloads(context.Background(), episode))
}
