package scrape

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const (
	streamMarker = "var _m"
	jsonLD       = `script[type="application/ld+json"].yoast-schema-graph`
)

var (
	streamKeyExp  = regexp.MustCompile(`var _m\s*=\s*\{\s*"r"\s*:\s*"(.*?)"\s*\}\s*;`)
	streamListExp = regexp.MustCompile(`var _a\s*=\s*`)
	registryExp   = regexp.MustCompile(`_zG\s*=\s*['"]([A-Za-z0-9+/=]+)['"]`)
	configExp     = regexp.MustCompile(`_zH\s*=\s*['"]([A-Za-z0-9+/=]+)['"]`)
)

// streamFields holds the `_m` key and one `_a` token per server, in page
// order. A token is "" when its entry had none.
type streamFields struct {
	Key    string
	Tokens []string
}

type complexFields struct {
	Registry string
	Config   string
}

func streamScript(text string) mo.Option[streamFields] {
	key := streamKeyExp.FindStringSubmatch(text)
	loc := streamListExp.FindStringIndex(text)
	if len(key) < 2 || key[1] == "" || loc == nil {
		return mo.None[streamFields]()
	}

	// the array is read as one value, tokens may hold ';'
	list, ok := jsArray(text[loc[1]:])
	if !ok {
		return mo.None[streamFields]()
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(list), &items); err != nil {
		return mo.None[streamFields]()
	}

	return mo.Some(streamFields{
		Key: key[1],
		Tokens: lo.Map(items, func(v json.RawMessage, _ int) string {
			var item struct {
				T string `json:"t"`
			}
			if err := json.Unmarshal(v, &item); err != nil {
				return ""
			}
			return item.T
		}),
	})
}

// jsArray returns the script array literal s starts with as JSON. Bare keys,
// single quoted strings and trailing commas are accepted.
func jsArray(s string) (string, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if !strings.HasPrefix(s, "[") {
		return "", false
	}

	var (
		out   []byte
		depth int
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"' || c == '\'':
			end, str, ok := jsString(s, i)
			if !ok {
				return "", false
			}
			out = append(out, str...)
			i = end
		case c == '[' || c == '{':
			depth++
			out = append(out, c)
		case c == ']' || c == '}':
			out = bytes.TrimRightFunc(out, unicode.IsSpace)
			out = bytes.TrimSuffix(out, []byte(","))
			out = append(out, c)
			if depth--; depth == 0 {
				return string(out), true
			}
		case isIdent(c):
			j := i
			for j < len(s) && isIdent(s[j]) {
				j++
			}
			word := s[i:j]
			if rest := strings.TrimLeftFunc(s[j:], unicode.IsSpace); strings.HasPrefix(rest, ":") {
				word = strconv.Quote(word)
			}
			out = append(out, word...)
			i = j - 1
		default:
			out = append(out, c)
		}
	}

	return "", false
}

// jsString reads the string literal opening at s[i] and returns its last
// index and the JSON form.
func jsString(s string, i int) (int, string, bool) {
	quote := s[i]
	out := []byte{'"'}
	for j := i + 1; j < len(s); j++ {
		switch c := s[j]; {
		case c == '\\' && j+1 < len(s):
			if s[j+1] == '\'' {
				out = append(out, '\'')
			} else {
				out = append(out, c, s[j+1])
			}
			j++
		case c == quote:
			return j, string(append(out, '"')), true
		case c == '"':
			out = append(out, '\\', '"')
		default:
			out = append(out, c)
		}
	}
	return 0, "", false
}

func isIdent(c byte) bool {
	return c == '_' || c == '$' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func complexScript(text string) mo.Option[complexFields] {
	registry := registryExp.FindStringSubmatch(text)
	config := configExp.FindStringSubmatch(text)
	if len(registry) < 2 || len(config) < 2 {
		return mo.None[complexFields]()
	}

	return mo.Some(complexFields{
		Registry: registry[1],
		Config:   config[1],
	})
}

// datePublished reads the WebPage entry of a yoast JSON-LD graph.
func datePublished(text string) mo.Option[string] {
	var data struct {
		Graph []struct {
			Type          json.RawMessage `json:"@type"`
			DatePublished string          `json:"datePublished"`
		} `json:"@graph"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &data); err != nil {
		return mo.None[string]()
	}

	for _, v := range data.Graph {
		if !isWebPage(v.Type) {
			continue
		}
		if v.DatePublished == "" {
			return mo.None[string]()
		}
		return mo.Some(v.DatePublished)
	}

	return mo.None[string]()
}

func isWebPage(raw json.RawMessage) bool {
	var one string
	if json.Unmarshal(raw, &one) == nil {
		return one == "WebPage"
	}

	var many []string
	if json.Unmarshal(raw, &many) == nil {
		return lo.Contains(many, "WebPage")
	}

	return false
}

func scripts(doc *goquery.Document) []string {
	return doc.Find("script").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

// published is the page's own publish date, nil when it has none.
func published(doc *goquery.Document) *string {
	if doc == nil {
		return nil
	}

	node := doc.Find(jsonLD).First()
	if node.Length() == 0 {
		return nil
	}

	if v, ok := datePublished(node.Text()).Get(); ok {
		return &v
	}
	return nil
}
