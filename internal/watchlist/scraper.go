package watchlist

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"cinewatch/internal/logging"
)

// Scraper retrieves a profile's watchlist from the tracking site.
type Scraper struct {
	base      *url.URL
	profile   string
	delay     time.Duration
	transport http.RoundTripper
	logger    *slog.Logger
}

// NewScraper builds a scraper for the given profile. The transport, usually
// the retrying fetch transport, may be nil to use the default.
func NewScraper(baseURL, profile string, delay time.Duration, transport http.RoundTripper, logger *slog.Logger) (*Scraper, error) {
	profile = strings.Trim(strings.TrimSpace(profile), "/")
	if profile == "" {
		return nil, fmt.Errorf("watchlist profile required")
	}
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse watchlist base url: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{
		base:      base,
		profile:   profile,
		delay:     delay,
		transport: transport,
		logger:    logger,
	}, nil
}

// Fetch returns the watchlist entries in site order. Pages or film details
// that fail to load are skipped and logged.
func (s *Scraper) Fetch(ctx context.Context) ([]Entry, error) {
	pages, err := s.pageCount()
	if err != nil {
		return nil, err
	}

	slugs, err := s.collectSlugs(ctx, pages)
	if err != nil {
		return nil, err
	}
	s.logger.Info("watchlist films discovered",
		logging.Int("pages", pages),
		logging.Int("films", len(slugs)),
	)

	return s.collectDetails(ctx, slugs)
}

func (s *Scraper) newCollector() (*colly.Collector, error) {
	collector := colly.NewCollector()
	if s.transport != nil {
		collector.WithTransport(s.transport)
	}
	if err := collector.Limit(&colly.LimitRule{DomainGlob: "*", RandomDelay: s.delay}); err != nil {
		return nil, fmt.Errorf("configure scrape limits: %w", err)
	}
	return collector, nil
}

// pageCount reads the watchlist paginator; a missing paginator means a
// single page.
func (s *Scraper) pageCount() (int, error) {
	pages := 1
	collector, err := s.newCollector()
	if err != nil {
		return 0, err
	}
	collector.OnHTML("div.paginate-pages a", func(e *colly.HTMLElement) {
		if n, err := strconv.Atoi(strings.TrimSpace(e.Text)); err == nil && n > pages {
			pages = n
		}
	})

	if err := collector.Visit(s.watchlistURL("")); err != nil {
		return 0, fmt.Errorf("fetch watchlist: %w", err)
	}
	return pages, nil
}

func (s *Scraper) collectSlugs(ctx context.Context, pages int) ([]string, error) {
	var slugs []string
	seen := make(map[string]struct{})

	collector, err := s.newCollector()
	if err != nil {
		return nil, err
	}
	collector.OnHTML("li.poster-container div[data-film-slug]", func(e *colly.HTMLElement) {
		slug := strings.TrimSpace(e.Attr("data-film-slug"))
		if slug == "" {
			return
		}
		if _, ok := seen[slug]; ok {
			return
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	})

	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pageURL := s.watchlistURL(fmt.Sprintf("page/%d/", page))
		if err := collector.Visit(pageURL); err != nil {
			s.logger.Warn("watchlist page skipped",
				logging.Int("page", page),
				logging.Error(err),
			)
		}
	}
	return slugs, nil
}

func (s *Scraper) collectDetails(ctx context.Context, slugs []string) ([]Entry, error) {
	collector, err := s.newCollector()
	if err != nil {
		return nil, err
	}

	// The collector is synchronous, so handlers always write into the entry
	// currently being visited.
	var current *Entry
	collector.OnHTML("div.details", func(e *colly.HTMLElement) {
		current.Title = strings.TrimSpace(e.ChildText("h1.headline-1 span"))
		current.OriginalTitle = strings.TrimSpace(e.ChildText("h2.originalname em"))
		current.Year = strings.TrimSpace(e.ChildText("span.releasedate"))
	})

	entries := make([]Entry, 0, len(slugs))
	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return entries, err
		}
		filmURL := s.filmURL(slug)
		entry := Entry{Slug: slug, URL: filmURL}
		current = &entry
		if err := collector.Visit(filmURL); err != nil {
			s.logger.Warn("film detail skipped",
				logging.String("slug", slug),
				logging.Error(err),
			)
			continue
		}
		if entry.Title == "" {
			s.logger.Warn("film detail unreadable", logging.String("slug", slug))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Scraper) watchlistURL(suffix string) string {
	ref := &url.URL{Path: fmt.Sprintf("/%s/watchlist/%s", s.profile, suffix)}
	return s.base.ResolveReference(ref).String()
}

func (s *Scraper) filmURL(slug string) string {
	ref := &url.URL{Path: fmt.Sprintf("/film/%s/", slug)}
	return s.base.ResolveReference(ref).String()
}
