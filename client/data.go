package client

import (
	"log/slog"
	"net/url"
	"time"
)

const UserAgent = "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Mobile Safari/537.36"

// default MaxBody
const maxBody = 16 << 20

type Options struct {
	UserAgent string
	// Referer is sent when a call does not pass its own.
	Referer        string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	Proxy          *url.URL
	// MaxBody bounds a response body, a bigger page is rejected.
	MaxBody int64
	Logger  *slog.Logger
}

type Args struct {
	Method   string
	Endpoint *url.URL
	Headers  map[string]string
}
