package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	r := NewResolver("https://witanime.red/", "witanime.you")

	assert.Equal(t, "", r.Resolve(""))
	assert.Equal(t, "", r.Resolve("   "))
	assert.Equal(t, "https://witanime.red/anime/naruto/", r.Resolve("/anime/naruto/"))
	assert.Equal(t, "https://witanime.red/anime/naruto/", r.Resolve("anime/naruto/"))
	assert.Equal(t, "https://witanime.red/anime/naruto/", r.Resolve("https://witanime.you/anime/naruto/"))
	assert.Equal(t, "https://cdn.example/a.jpg", r.Resolve("https://cdn.example/a.jpg"))
	assert.Equal(t, "https://img.example/a.jpg", r.Resolve("//img.example/a.jpg"))
	assert.Equal(t, "https://witanime.red/episode/naruto-الحلقة-12/", r.Episode("naruto", "12"))
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	r := NewResolver("https://witanime.red", "witanime.you")

	for _, raw := range []string{
		"/anime/one-piece/",
		"https://witanime.red/episode/one-piece-الحلقة-1/",
		"https://witanime.you/anime/bleach/",
		"//witanime.red/wp-content/a.png",
		"https://yonaplay.org/embed.php?id=1",
	} {
		once := r.Resolve(raw)
		assert.Equal(t, once, r.Resolve(once), raw)
	}
}
