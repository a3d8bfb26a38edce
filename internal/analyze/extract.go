package analyze

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

// ExtractEpisode returns the first run of digits and dots, "1" when there is none.
func ExtractEpisode(input string) string {
	if match := decimalExp.FindString(input); match != "" {
		return match
	}
	return "1"
}

// ExtractDecimal keeps only digits and dots, "1" when nothing is left.
func ExtractDecimal(input string) string {
	if v := nonDecExp.ReplaceAllString(input, ""); v != "" {
		return v
	}
	return "1"
}

// ExtractDigits keeps only the digits of input.
func ExtractDigits(input string) string {
	return digitsExp.ReplaceAllString(input, "")
}

// ExtractField returns the text after the first colon.
func ExtractField(input string) string {
	if _, after, ok := strings.Cut(input, ":"); ok {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(input)
}

// ExtractSlug returns the last path segment of link.
func ExtractSlug(link string) string {
	link = strings.TrimSuffix(link, "/")
	if i := strings.LastIndex(link, "/"); i >= 0 {
		return link[i+1:]
	}
	return link
}

// ExtractQuality classifies a heading or link text.
func ExtractQuality(input string) string {
	input = strings.ToUpper(input)
	switch {
	case strings.Contains(input, FHD):
		return FHD
	case strings.Contains(input, HD):
		return HD
	case strings.Contains(input, SD):
		return SD
	}
	return Unknown
}

// ExtractLinkQuality guesses the quality of a server from its link.
func ExtractLinkQuality(link string) string {
	link = strings.ToLower(link)
	switch {
	case strings.Contains(link, "1080") || strings.Contains(link, "fhd"):
		return FHD
	case strings.Contains(link, "720") || strings.Contains(link, "hd"):
		return HD
	case strings.Contains(link, "480") || strings.Contains(link, "sd"):
		return SD
	}
	return Multi
}

// ExtractNameQuality is ExtractQuality for server names, where no match means
// the server carries several qualities.
func ExtractNameQuality(name string) string {
	if q := ExtractQuality(name); q != Unknown {
		return q
	}
	return Multi
}

// ExtractServer names the video host of link.
func ExtractServer(link string) string {
	link = strings.ToLower(link)
	for _, v := range servers {
		if strings.Contains(link, v[0]) {
			return v[1]
		}
	}
	return Unknown
}

// ExtractDownloadHost reports which allowed file host serves link. Only the
// host name is matched, one of its labels must be the host.
func ExtractDownloadHost(link string) (string, bool) {
	if !strings.HasPrefix(link, "http") {
		return "", false
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}

	labels := strings.Split(strings.ToLower(u.Hostname()), ".")
	for _, v := range downloads {
		if slices.Contains(labels, v) {
			return v, true
		}
	}
	return "", false
}

// NextEpisode assumes a weekly release after the published date.
func NextEpisode(published string) (time.Time, bool) {
	if published == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339, published)
	if err != nil {
		return time.Time{}, false
	}

	return t.AddDate(0, 0, 7), true
}
