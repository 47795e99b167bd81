package watchlist

import "strings"

// Entry is one watchlist film. FilmID is the catalog id the resolver fills
// in, at most once per run.
type Entry struct {
	Slug          string `json:"slug"`
	Title         string `json:"lb_title"`
	URL           string `json:"lb_url"`
	Year          string `json:"lb_year,omitempty"`
	OriginalTitle string `json:"lb_original_title,omitempty"`
	FilmID        string `json:"ac_id,omitempty"`
}

// PreferredTitle returns the original title when the site lists one, else the
// display title. The catalog indexes films under the same preference.
func (e Entry) PreferredTitle() string {
	if title := strings.TrimSpace(e.OriginalTitle); title != "" {
		return title
	}
	return strings.TrimSpace(e.Title)
}
