package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry describes one catalog film. Immutable once loaded.
type Entry struct {
	Title         string `json:"ac_title"`
	OriginalTitle string `json:"ac_original_title,omitempty"`
	Year          string `json:"ac_year,omitempty"`
	Poster        string `json:"ac_poster,omitempty"`
	URL           string `json:"ac_url,omitempty"`
}

// PreferredTitle returns the original title when present, else the canonical
// title. This is the key films are matched under: the watchlist site lists
// original titles for foreign films, the catalog localizes the canonical one.
func (e Entry) PreferredTitle() string {
	if title := strings.TrimSpace(e.OriginalTitle); title != "" {
		return title
	}
	return strings.TrimSpace(e.Title)
}

// Catalog holds the film database in document order.
type Catalog struct {
	ids     []string
	entries map[string]Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Add appends an entry under id. Re-adding an id overwrites the entry but
// keeps its original position.
func (c *Catalog) Add(id string, entry Entry) {
	if _, ok := c.entries[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.entries[id] = entry
}

// Get returns the entry for id.
func (c *Catalog) Get(id string) (Entry, bool) {
	entry, ok := c.entries[id]
	return entry, ok
}

// IDs returns the catalog ids in document order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Load reads a catalog JSON document (id -> entry), preserving document order.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parse catalog: expected object, got %v", tok)
	}

	cat := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parse catalog: expected string key, got %v", keyTok)
		}
		var entry Entry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("parse catalog entry %q: %w", id, err)
		}
		cat.Add(id, entry)
	}
	return cat, nil
}

// LoadCities reads the city-name to city-id document. Ids may appear as JSON
// strings or numbers; both are normalized to strings.
func LoadCities(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open cities: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse cities: %w", err)
	}
	cities := make(map[string]string, len(raw))
	for name, value := range raw {
		switch v := value.(type) {
		case string:
			cities[name] = v
		case float64:
			cities[name] = strings.TrimSuffix(fmt.Sprintf("%.0f", v), ".")
		default:
			return nil, fmt.Errorf("parse cities: unexpected id for %q", name)
		}
	}
	return cities, nil
}
