package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"cinewatch/internal/catalog"
	"cinewatch/internal/config"
	"cinewatch/internal/digest"
	"cinewatch/internal/fetch"
	"cinewatch/internal/logging"
	"cinewatch/internal/showtimes"
	"cinewatch/internal/watchlist"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logOnce sync.Once
	logger  *slog.Logger
	logErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.logOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logErr = err
			return
		}
		c.logger, c.logErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.logErr
}

func (c *commandContext) httpClient() (*http.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return fetch.NewClient(cfg, logger), nil
}

// scrapeDelay returns the upper bound for the random per-request delay used
// when crawling listing pages.
func (c *commandContext) scrapeDelay() time.Duration {
	cfg, err := c.ensureConfig()
	if err != nil {
		return 0
	}
	return time.Duration(cfg.Fetch.MaxDelaySeconds) * time.Second
}

func (c *commandContext) loadCatalog() (*catalog.Catalog, *catalog.Index, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalog.Load(cfg.Allocine.FilmsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog (run `cinewatch catalog build` first): %w", err)
	}
	return cat, catalog.BuildIndex(cat), nil
}

func (c *commandContext) cityID() (string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	cities, err := catalog.LoadCities(cfg.Allocine.CitiesPath)
	if err != nil {
		return "", err
	}
	id, ok := cities[cfg.Allocine.City]
	if !ok {
		return "", fmt.Errorf("city %q not found in %s", cfg.Allocine.City, cfg.Allocine.CitiesPath)
	}
	return id, nil
}

func (c *commandContext) watchlistScraper() (*watchlist.Scraper, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	client, err := c.httpClient()
	if err != nil {
		return nil, err
	}
	return watchlist.NewScraper(cfg.Letterboxd.BaseURL, cfg.Letterboxd.Profile, c.scrapeDelay(), client.Transport, logger)
}

func (c *commandContext) aggregator() (*showtimes.Aggregator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	client, err := c.httpClient()
	if err != nil {
		return nil, err
	}
	feed, err := showtimes.NewClient(cfg.Allocine.ShowtimesURL, client)
	if err != nil {
		return nil, err
	}
	city, err := c.cityID()
	if err != nil {
		return nil, err
	}
	return showtimes.NewAggregator(feed, city, cfg.Subscriber.ZipPrefixes, cfg.Fetch.RetryMax, logger), nil
}

func (c *commandContext) sender() (*digest.Sender, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return digest.NewSender(digest.SMTPOptions{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Sender:   cfg.SMTP.Sender,
		Password: cfg.SMTP.Password,
		Timeout:  time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
