package analyze

import "regexp"

const (
	FHD     = "FHD"
	HD      = "HD"
	SD      = "SD"
	Multi   = "Multi"
	Unknown = "Unknown"
)

var (
	unicode = [12]string{
		"\u200b",
		"\u200d",
		"\u200e",
		"\u200f",
		"\u00ad",
		"\u200c",
		"\u180e",
		"\u202a",
		"\u202b",
		"\u202d",
		"\u202e",
		"\u00a0",
	}
	// ordered, first match wins
	servers = [5][2]string{
		{"yona", "YonaPlay"},
		{"streamwish", "StreamWish"},
		{"videa", "Videa"},
		{"dailymotion", "Dailymotion"},
		{"mp4upload", "Mp4Upload"},
	}
	downloads = [5]string{"mediafire", "workupload", "mp4upload", "gofile", "mega"}

	decimalExp = regexp.MustCompile(`[\d.]+`)
	digitsExp  = regexp.MustCompile(`[^0-9]`)
	nonDecExp  = regexp.MustCompile(`[^0-9.]`)
)
