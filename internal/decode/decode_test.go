package decode

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestStreamRoundTrip(t *testing.T) {
	t.Parallel()

	links := []string{
		"https://yonaplay.org/embed.php?id=4512",
		"https://www.dailymotion.com/embed/video/x8abc",
		"https://videa.hu/player?v=Zx9",
		"h",
	}
	keys := []string{"k", "secret", "0123456789abcdef0123456789", "مفتاح"}

	for _, link := range links {
		for _, key := range keys {
			token := EncodeStream(link, key)
			got, err := Stream(token, b64(key))
			require.NoError(t, err, "link %q key %q", link, key)
			assert.Equal(t, link, got)
		}
	}
}

func TestStreamRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := Stream("abc", "%%%")
	assert.Error(t, err)

	_, err = Stream("", b64("key"))
	assert.Error(t, err)

	_, err = Stream("definitely not a token", b64("key"))
	assert.Error(t, err)
}

func TestBase64AcceptsMissingPaddingAndWhitespace(t *testing.T) {
	t.Parallel()

	got, err := Base64("aHR0cHM6Ly9h\nLmNvbQ")
	require.NoError(t, err)
	assert.Equal(t, "https://a.com", got)

	_, err = Base64("  ")
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	got, err := Registry(b64(" a, b ,,c "))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestComplexRoundTrip(t *testing.T) {
	t.Parallel()

	link := "https://streamwish.to/e/q1w2e3"
	registry := make([]string, len(link))
	for i := range registry {
		registry[i] = "r"
	}

	c := EncodeComplex(link, "Zkey", []int{7, 19, 101, 3})
	got, ok := Complex(registry, c).Get()
	require.True(t, ok)
	assert.Equal(t, link, got)
}

func TestComplexStopsAtShortestArray(t *testing.T) {
	t.Parallel()

	link := "https://mp4upload.com/embed-1.html"
	c := EncodeComplex(link, "K", []int{42})

	got, ok := Complex([]string{"a", "b", "c", "d", "e", "f"}, c).Get()
	require.True(t, ok)
	assert.Equal(t, "https:", got)

	_, ok = Complex([]string{"a", "b"}, c).Get()
	assert.False(t, ok, "a two character candidate is not a link")
}

func TestComplexDropsNonLinks(t *testing.T) {
	t.Parallel()

	registry := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	c := EncodeComplex("ftp://x", "K", []int{5})

	assert.True(t, Complex(registry, c).IsAbsent())
	assert.Empty(t, ComplexAll(registry, []Config{c}))
}

func TestConfigsSkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	good := EncodeComplex("https://a.b", "K", []int{1, 2})
	data, err := json.Marshal([]any{
		good,
		map[string]any{"d": "oops", "k": "Sw==", "v": "1", "x": []int{1}},
		map[string]any{"k": "Sw==", "v": "1"},
	})
	require.NoError(t, err)

	results, err := Configs(b64(string(data)))
	require.NoError(t, err)
	require.Len(t, results, 3)

	c, err := results[0].Get()
	require.NoError(t, err)
	assert.Equal(t, good, c)
	assert.True(t, results[1].IsError())
	assert.True(t, results[2].IsError())

	_, err = Configs(b64("{not an array"))
	assert.Error(t, err)
}

func TestConfigsNumericMarkerAndEmptyKey(t *testing.T) {
	t.Parallel()

	link := "http://a.b"
	registry := make([]string, len(link))

	c := EncodeComplex(link, "", []int{7})
	require.Empty(t, c.K)

	data, err := json.Marshal([]map[string]any{
		{"d": c.D, "k": "", "v": 1, "x": c.X},
	})
	require.NoError(t, err)

	results, err := Configs(b64(string(data)))
	require.NoError(t, err)
	require.Len(t, results, 1)

	got, err := results[0].Get()
	require.NoError(t, err)
	assert.JSONEq(t, "1", string(got.V))

	decoded, ok := Complex(registry, got).Get()
	require.True(t, ok)
	assert.Equal(t, link, decoded)
}

func TestConfigsRejectMissingKey(t *testing.T) {
	t.Parallel()

	c := EncodeComplex("http://a.b", "", []int{3})
	data, err := json.Marshal([]map[string]any{
		{"d": c.D, "v": "1", "x": c.X},
		{"d": c.D, "k": nil, "v": "1", "x": c.X},
		{"d": c.D, "k": "", "v": "1", "x": c.X},
	})
	require.NoError(t, err)

	results, err := Configs(b64(string(data)))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].IsError())
	assert.True(t, results[1].IsError())
	assert.False(t, results[2].IsError())
}
