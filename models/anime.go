package models

import "strings"

type AnimeKind string

const (
	Airing    AnimeKind = "airing"
	Completed AnimeKind = "completed"
	Upcoming  AnimeKind = "upcoming"
	Unknown   AnimeKind = "unknown"
)

type AnimeDetails struct {
	Name                     string   `json:"Name"`
	ImageURL                 string   `json:"ImageURL"`
	Story                    string   `json:"Story"`
	Genres                   []string `json:"Genres"`
	Rating                   string   `json:"Rating"`
	EpisodeDuration          string   `json:"EpisodeDuration"`
	Source                   string   `json:"Source"`
	Type                     string   `json:"Type"`
	Status                   string   `json:"Status"`
	LatestEpisodePublishedAt *string  `json:"LatestEpisodePublishedAt,omitempty"`
}

// NewAnimeDetails returns the not yet loaded placeholder value.
func NewAnimeDetails() AnimeDetails {
	return AnimeDetails{
		Name:            Loading,
		Story:           Ellipsis,
		Rating:          Ellipsis,
		EpisodeDuration: Ellipsis,
		Source:          Ellipsis,
		Type:            Ellipsis,
		Status:          Ellipsis,
	}
}

func (v AnimeDetails) IsLoaded() bool {
	return v.Name != Loading
}

func (v AnimeDetails) IsMovie() bool {
	return IsMovie(v.Type)
}

// IsMovie reports whether the type text names a movie.
func IsMovie(kind string) bool {
	return strings.EqualFold(strings.TrimSpace(kind), "movie")
}

// Kind maps the site's status text.
func (v AnimeDetails) Kind() AnimeKind {
	switch s := strings.TrimSpace(v.Status); {
	case strings.Contains(s, "يعرض"):
		if strings.Contains(s, "لم") {
			return Upcoming
		}
		return Airing
	case strings.Contains(s, "مكتمل"):
		return Completed
	case strings.Contains(s, "قريبا"):
		return Upcoming
	}
	return Unknown
}
