package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeAllocine(); err != nil {
		return err
	}
	c.normalizeLetterboxd()
	c.normalizeSubscriber()
	c.normalizeSMTP()
	c.normalizeFetch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLetterboxd() {
	c.Letterboxd.BaseURL = strings.TrimSpace(c.Letterboxd.BaseURL)
	if c.Letterboxd.BaseURL == "" {
		c.Letterboxd.BaseURL = defaultLetterboxdBaseURL
	}
	c.Letterboxd.Profile = strings.Trim(strings.TrimSpace(c.Letterboxd.Profile), "/")
}

func (c *Config) normalizeAllocine() error {
	c.Allocine.BaseURL = strings.TrimRight(strings.TrimSpace(c.Allocine.BaseURL), "/")
	if c.Allocine.BaseURL == "" {
		c.Allocine.BaseURL = defaultAllocineBaseURL
	}
	c.Allocine.ShowtimesURL = strings.TrimSpace(c.Allocine.ShowtimesURL)
	if c.Allocine.ShowtimesURL == "" {
		c.Allocine.ShowtimesURL = defaultShowtimesURL
	}
	c.Allocine.City = strings.TrimSpace(c.Allocine.City)
	if c.Allocine.CatalogPages <= 0 {
		c.Allocine.CatalogPages = defaultCatalogPages
	}

	var err error
	if strings.TrimSpace(c.Allocine.FilmsPath) == "" {
		c.Allocine.FilmsPath = filepath.Join(c.Paths.DataDir, defaultFilmsFilename)
	}
	if c.Allocine.FilmsPath, err = expandPath(c.Allocine.FilmsPath); err != nil {
		return fmt.Errorf("allocine.films_path: %w", err)
	}
	if strings.TrimSpace(c.Allocine.CitiesPath) == "" {
		c.Allocine.CitiesPath = filepath.Join(c.Paths.DataDir, defaultCitiesFilename)
	}
	if c.Allocine.CitiesPath, err = expandPath(c.Allocine.CitiesPath); err != nil {
		return fmt.Errorf("allocine.cities_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeSubscriber() {
	c.Subscriber.Email = strings.TrimSpace(c.Subscriber.Email)
	prefixes := make([]string, 0, len(c.Subscriber.ZipPrefixes))
	for _, prefix := range c.Subscriber.ZipPrefixes {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			prefixes = append(prefixes, trimmed)
		}
	}
	c.Subscriber.ZipPrefixes = prefixes
	if c.Subscriber.WindowDays <= 0 {
		c.Subscriber.WindowDays = defaultWindowDays
	}
	c.Subscriber.Locale = strings.TrimSpace(c.Subscriber.Locale)
	if c.Subscriber.Locale == "" {
		c.Subscriber.Locale = defaultLocale
	}
}

func (c *Config) normalizeSMTP() {
	c.SMTP.Host = strings.TrimSpace(c.SMTP.Host)
	if c.SMTP.Host == "" {
		c.SMTP.Host = defaultSMTPHost
	}
	if c.SMTP.Port <= 0 {
		c.SMTP.Port = defaultSMTPPort
	}
	c.SMTP.Sender = strings.TrimSpace(c.SMTP.Sender)
	if c.SMTP.Password == "" {
		if value, ok := os.LookupEnv("CINEWATCH_SMTP_PASSWORD"); ok {
			c.SMTP.Password = value
		}
	}
}

func (c *Config) normalizeFetch() {
	if c.Fetch.RetryMax < 0 {
		c.Fetch.RetryMax = defaultFetchRetryMax
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		c.Fetch.TimeoutSeconds = defaultFetchTimeout
	}
	if c.Fetch.MinDelaySeconds < 0 {
		c.Fetch.MinDelaySeconds = defaultFetchMinDelay
	}
	if c.Fetch.MaxDelaySeconds < c.Fetch.MinDelaySeconds {
		c.Fetch.MaxDelaySeconds = c.Fetch.MinDelaySeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
