package showtimes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"time"

	"cinewatch/internal/logging"
)

const (
	feedDateLayout  = "2006-01-02"
	defaultRetryCap = 2
	mapsSearchBase  = "https://www.google.com/maps/search/?api=1&query="
)

// Source supplies feed pages. *Client satisfies it.
type Source interface {
	Day(ctx context.Context, filmID, cityID, date string) (*DayResponse, error)
}

// Window bounds the dates scanned for one run, inclusive on both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowFrom builds a window spanning days calendar days starting at start.
func WindowFrom(start time.Time, days int) Window {
	start = start.Truncate(24 * time.Hour)
	if days < 1 {
		days = 1
	}
	return Window{Start: start, End: start.AddDate(0, 0, days-1)}
}

// TimeVersion pairs a screening timestamp with its diffusion version. It
// serializes as a two-element array to keep snapshot files compact.
type TimeVersion struct {
	StartsAt string
	Version  string
}

func (tv TimeVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{tv.StartsAt, tv.Version})
}

func (tv *TimeVersion) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	tv.StartsAt = pair[0]
	tv.Version = pair[1]
	return nil
}

// Record captures one theater's screenings for one date after filtering.
type Record struct {
	TheaterName    string        `json:"theater_name"`
	TheaterAddress string        `json:"theater_full_address"`
	TheaterMaps    string        `json:"theater_maps"`
	Showtimes      []TimeVersion `json:"theater_showtimes"`
	Tickets        []string      `json:"theater_tickets"`
}

// Aggregator walks the date-paginated feed for a film and collects records
// for theaters whose zip code matches the subscriber's prefixes.
type Aggregator struct {
	source      Source
	cityID      string
	zipPrefixes []string
	retryCap    int
	logger      *slog.Logger
}

// NewAggregator wires an aggregator. retryCap <= 0 selects the default.
func NewAggregator(source Source, cityID string, zipPrefixes []string, retryCap int, logger *slog.Logger) *Aggregator {
	if retryCap <= 0 {
		retryCap = defaultRetryCap
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		source:      source,
		cityID:      cityID,
		zipPrefixes: zipPrefixes,
		retryCap:    retryCap,
		logger:      logger,
	}
}

// Collect scans the window one date at a time. Dates that keep failing past
// the retry cap are skipped rather than stalling the scan, and the feed's
// nextDate hint jumps the cursor over empty stretches. An empty film id
// yields no records.
func (a *Aggregator) Collect(ctx context.Context, filmID string, window Window) ([]Record, error) {
	if filmID == "" {
		return nil, nil
	}

	var records []Record
	cur := window.Start
	failures := 0

	for !cur.After(window.End) {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		date := cur.Format(feedDateLayout)

		resp, err := a.source.Day(ctx, filmID, a.cityID, date)
		if err != nil {
			failures++
			a.logger.Warn("showtime fetch failed",
				logging.String("film_id", filmID),
				logging.String("date", date),
				logging.Int("attempt", failures),
				logging.Error(err))
			if failures > a.retryCap {
				a.logger.Warn("skipping date after repeated failures",
					logging.String("film_id", filmID),
					logging.String("date", date))
				cur = cur.AddDate(0, 0, 1)
				failures = 0
			}
			continue
		}
		failures = 0

		if len(resp.Results) == 0 {
			if resp.NextDate == "" {
				break
			}
			next, perr := time.Parse(feedDateLayout, resp.NextDate)
			if perr != nil || !next.After(cur) {
				break
			}
			cur = next
			continue
		}

		for _, day := range resp.Results {
			if !a.matchesZip(day.Theater.Location.Zip) {
				continue
			}
			records = append(records, buildRecord(day))
		}
		cur = cur.AddDate(0, 0, 1)
	}

	return records, nil
}

func (a *Aggregator) matchesZip(zip string) bool {
	for _, prefix := range a.zipPrefixes {
		if strings.HasPrefix(zip, prefix) {
			return true
		}
	}
	return false
}

func buildRecord(day TheaterDay) Record {
	loc := day.Theater.Location
	full := strings.Join([]string{loc.Address, loc.Zip, loc.City}, " ")

	versions := make([]string, 0, len(day.Showtimes))
	for version := range day.Showtimes {
		versions = append(versions, version)
	}
	sort.Strings(versions)

	var times []TimeVersion
	for _, version := range versions {
		for _, st := range day.Showtimes[version] {
			times = append(times, TimeVersion{StartsAt: st.StartsAt, Version: st.DiffusionVersion})
		}
	}

	return Record{
		TheaterName:    day.Theater.Name,
		TheaterAddress: full,
		TheaterMaps:    fmt.Sprintf("%s%s", mapsSearchBase, url.QueryEscape(full)),
		Showtimes:      times,
		Tickets:        day.Theater.LoyaltyCards,
	}
}
