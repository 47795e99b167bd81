package showtimes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Location is a theater's postal address.
type Location struct {
	Address string `json:"address"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
}

// Theater describes one theater in a feed response.
type Theater struct {
	Name         string   `json:"name"`
	Location     Location `json:"location"`
	LoyaltyCards []string `json:"loyaltyCards"`
}

// Showtime is a single screening.
type Showtime struct {
	StartsAt         string `json:"startsAt"`
	DiffusionVersion string `json:"diffusionVersion"`
}

// TheaterDay groups a theater's screenings for one date, keyed by diffusion
// version.
type TheaterDay struct {
	Theater   Theater               `json:"theater"`
	Showtimes map[string][]Showtime `json:"showtimes"`
}

// DayResponse models one page of the date-paginated feed. Either Results is
// populated, or NextDate names the next date that has results ("" when none
// remain).
type DayResponse struct {
	Results  []TheaterDay `json:"results"`
	NextDate string       `json:"nextDate"`
}

// Client queries the showtime feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a feed client.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("showtimes base url required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// Day fetches the feed page for (filmID, cityID, date). Date uses the
// feed's YYYY-MM-DD form.
func (c *Client) Day(ctx context.Context, filmID, cityID, date string) (*DayResponse, error) {
	if filmID == "" {
		return nil, errors.New("film id must not be empty")
	}
	endpoint := fmt.Sprintf("%s/movie-%s/near-%s/d-%s", c.baseURL, filmID, cityID, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("showtime feed returned %d for %s (latency=%v)", resp.StatusCode, date, latency)
	}

	var payload DayResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode showtime response: %w", err)
	}
	return &payload, nil
}
