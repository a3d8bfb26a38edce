package scrape

import (
	"net/url"
	"strings"
)

// Resolver turns site links into absolute links on the canonical domain.
type Resolver struct {
	base      string
	scheme    string
	canonical string
	legacy    string
}

func NewResolver(base, legacy string) Resolver {
	base = strings.TrimRight(strings.TrimSpace(base), "/")

	r := Resolver{
		base:   base,
		scheme: "https",
		legacy: strings.TrimSpace(legacy),
	}
	if u, err := url.Parse(base); err == nil {
		r.canonical = u.Host
		if u.Scheme != "" {
			r.scheme = u.Scheme
		}
	}

	return r
}

// Base is the canonical site root without a trailing slash.
func (r Resolver) Base() string {
	return r.base
}

// Resolve returns "" for a blank link. Absolute links only get the legacy
// mirror host swapped, anything else is joined onto the base.
func (r Resolver) Resolve(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "http"):
		if r.legacy != "" && r.canonical != "" {
			return strings.ReplaceAll(raw, r.legacy, r.canonical)
		}
		return raw
	case strings.HasPrefix(raw, "//"):
		return r.Resolve(r.scheme + ":" + raw)
	case strings.HasPrefix(raw, "/"):
		return r.base + raw
	}
	return r.base + "/" + raw
}

// Episode builds the conventional link of episode n of the anime slug. Nothing
// guarantees the page exists.
func (r Resolver) Episode(slug, n string) string {
	return r.base + "/episode/" + slug + "-الحلقة-" + n + "/"
}
