// Package testsupport provides helpers shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"cinewatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Allocine.FilmsPath = filepath.Join(base, "data", "allocine_films.json")
	cfg.Allocine.CitiesPath = filepath.Join(base, "data", "allocine_cities_id.json")
	cfg.Letterboxd.Profile = "testuser"
	cfg.Allocine.City = "Paris"
	cfg.Subscriber.Email = "subscriber@example.com"
	cfg.Subscriber.ZipPrefixes = []string{"75", "93"}
	cfg.SMTP.Sender = "sender@example.com"
	cfg.SMTP.Password = "secret"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithProfile overrides the watchlist profile on the test config.
func WithProfile(profile string) ConfigOption {
	return func(c *config.Config) {
		c.Letterboxd.Profile = profile
	}
}

// WithZipPrefixes overrides the subscriber zip prefixes on the test config.
func WithZipPrefixes(prefixes ...string) ConfigOption {
	return func(c *config.Config) {
		c.Subscriber.ZipPrefixes = prefixes
	}
}

// WithWindowDays overrides the subscriber window on the test config.
func WithWindowDays(days int) ConfigOption {
	return func(c *config.Config) {
		c.Subscriber.WindowDays = days
	}
}
