package models

import "time"

// Placeholders carried by AnimeDetails until the page is parsed. Callers treat
// them as "not loaded", never as values.
const (
	Loading  = "جاري التحميل..."
	Ellipsis = "..."
)

// Fallbacks of a parsed page missing a field.
const (
	NotAvailable = "N/A"
	NoName       = "غير معروف"
	NoStory      = "لا توجد قصة."
	NoStatus     = "غير معروف"
	DefaultType  = "TV"
)

type Episode struct {
	AnimeName     string  `json:"AnimeName"`
	EpisodeNumber string  `json:"EpisodeNumber"`
	ImageURL      string  `json:"ImageURL"`
	EpisodeURL    string  `json:"EpisodeURL"`
	Source        string  `json:"Source"`
	PublishedAt   *string `json:"PublishedAt,omitempty"`
}

type Server struct {
	Name     string `json:"Name"`
	EmbedURL string `json:"EmbedURL"`
	Quality  string `json:"Quality"`
}

type DownloadLink struct {
	Host    string `json:"Host"`
	URL     string `json:"URL"`
	Quality string `json:"Quality"`
}

type ScheduleAnime struct {
	Name        string  `json:"Name"`
	ImageURL    string  `json:"ImageURL"`
	AnimeURL    string  `json:"AnimeURL"`
	Description *string `json:"Description,omitempty"`
}

type DailySchedule struct {
	Day    string          `json:"Day"`
	Animes []ScheduleAnime `json:"Animes"`
}

type User struct {
	ID          string `json:"ID"`
	Email       string `json:"Email"`
	DisplayName string `json:"DisplayName,omitempty"`
	PhotoURL    string `json:"PhotoURL,omitempty"`
}

type UserProfile struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

type Comment struct {
	ID             string    `json:"-"`
	Text           string    `json:"text"`
	AnimeID        string    `json:"animeId"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	UserProfilePic *string   `json:"userProfilePic,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
