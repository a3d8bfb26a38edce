package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/animebay/animebay-scraper/client"
)

var logger = slog.Default().WithGroup("[CONFIG]")

// Duration reads "30s" style values.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	BaseURL        string   `toml:"base_url"`
	LegacyHost     string   `toml:"legacy_host"`
	UserAgent      string   `toml:"user_agent"`
	ConnectTimeout Duration `toml:"connect_timeout"`
	ReadTimeout    Duration `toml:"read_timeout"`
	Fanout         int      `toml:"fanout"`
	Proxy          string   `toml:"proxy_url"`
	TMDBKey        string   `toml:"tmdb_key"`
	StorePath      string   `toml:"store_path"`
	LogLevel       string   `toml:"log_level"`
}

func Default() *Config {
	return &Config{
		BaseURL:        "https://witanime.red",
		LegacyHost:     "witanime.you",
		UserAgent:      client.UserAgent,
		ConnectTimeout: Duration{30 * time.Second},
		ReadTimeout:    Duration{30 * time.Second},
		LogLevel:       "info",
	}
}

// Load merges the file at path and the environment over the defaults. An
// empty path or a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Warn("no config file, using defaults", "path", path)
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err = toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	config.env()
	if strings.TrimSpace(config.UserAgent) == "" {
		config.UserAgent = client.UserAgent
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (c *Config) env() {
	for key, field := range map[string]*string{
		"ANIMEBAY_BASE_URL": &c.BaseURL,
		"PROXY_URL":         &c.Proxy,
		"TMDB_KEY":          &c.TMDBKey,
	} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			logger.Info("value was set", "key", key)
			*field = value
		}
	}
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url %q must be an absolute http(s) url", c.BaseURL)
	}
	if c.Proxy != "" {
		if _, err := url.Parse(c.Proxy); err != nil {
			return fmt.Errorf("proxy_url %q: %w", c.Proxy, err)
		}
	}
	if c.ConnectTimeout.Duration <= 0 || c.ReadTimeout.Duration <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.Fanout < 0 {
		return fmt.Errorf("fanout %d cannot be negative", c.Fanout)
	}
	if _, ok := levels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("unsupported log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Level is the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	return levels[strings.ToLower(c.LogLevel)]
}
