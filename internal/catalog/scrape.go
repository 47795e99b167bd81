package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"cinewatch/internal/logging"
)

var (
	filmIDPattern = regexp.MustCompile(`\d+`)
	yearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ListingScraper walks the catalog site's paginated film listing and rebuilds
// the catalog document from it.
type ListingScraper struct {
	baseURL string
	pages   int
	logger  *slog.Logger
	delay   time.Duration
}

// NewListingScraper builds a scraper for the listing at baseURL covering the
// first pages listing pages.
func NewListingScraper(baseURL string, pages int, delay time.Duration, logger *slog.Logger) (*ListingScraper, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("catalog base url required")
	}
	if pages <= 0 {
		return nil, fmt.Errorf("catalog page count must be positive")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ListingScraper{baseURL: baseURL, pages: pages, logger: logger, delay: delay}, nil
}

// Build scrapes the listing pages and returns the assembled catalog. Pages
// that fail to fetch are skipped; the catalog keeps whatever was collected.
func (s *ListingScraper) Build(ctx context.Context, transport http.RoundTripper) (*Catalog, error) {
	cat := New()

	collector := colly.NewCollector()
	if transport != nil {
		collector.WithTransport(transport)
	}
	if err := collector.Limit(&colly.LimitRule{DomainGlob: "*", RandomDelay: s.delay}); err != nil {
		return nil, fmt.Errorf("configure scrape limits: %w", err)
	}

	collector.OnHTML("li.mdl", func(e *colly.HTMLElement) {
		href := e.ChildAttr("a.meta-title-link", "href")
		title := strings.TrimSpace(e.ChildText("a.meta-title-link"))
		if href == "" || title == "" {
			return
		}
		id := filmIDPattern.FindString(href)
		if id == "" {
			return
		}

		entry := Entry{
			Title: title,
			URL:   s.baseURL + href,
		}
		if poster := e.ChildAttr("img.thumbnail-img", "data-src"); poster != "" {
			entry.Poster = poster
		} else {
			entry.Poster = e.ChildAttr("img.thumbnail-img", "src")
		}
		if info := e.ChildText("div.meta-body-item.meta-body-info"); info != "" {
			entry.Year = yearPattern.FindString(info)
		}
		entry.OriginalTitle = originalTitle(e.DOM)

		cat.Add(id, entry)
	})

	collector.OnError(func(r *colly.Response, err error) {
		s.logger.Warn("catalog page fetch failed",
			logging.String("url", r.Request.URL.String()),
			logging.Error(err),
		)
	})

	for page := 1; page <= s.pages; page++ {
		if err := ctx.Err(); err != nil {
			return cat, err
		}
		url := fmt.Sprintf("%s/films/?page=%d", s.baseURL, page)
		if err := collector.Visit(url); err != nil {
			s.logger.Warn("catalog page skipped",
				logging.Int("page", page),
				logging.Error(err),
			)
		}
		if page%100 == 0 {
			s.logger.Info("catalog scrape progress",
				logging.Int("page", page),
				logging.Int("films", cat.Len()),
			)
		}
	}
	return cat, nil
}

// originalTitle extracts the "Titre original" value, which the listing
// renders as a label span followed by a value span.
func originalTitle(sel *goquery.Selection) string {
	var original string
	sel.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		if strings.TrimSpace(span.Text()) == "Titre original" {
			original = strings.TrimSpace(span.Next().Text())
			return false
		}
		return true
	})
	return original
}
