package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cinewatch/internal/textutil"
)

// Document is a JSON object whose keys marshal in insertion order.
type Document struct {
	keys   []string
	values map[string]any
}

// NewDocument returns an empty ordered document.
func NewDocument() *Document {
	return &Document{values: make(map[string]any)}
}

// Set stores value under key, appending the key on first use.
func (d *Document) Set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Len reports the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// MarshalJSON emits the document with keys in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		before := buf.Len()
		if err := enc.Encode(d.values[key]); err != nil {
			return nil, fmt.Errorf("marshal value for %q: %w", key, err)
		}
		// Encode appends a trailing newline; drop it.
		if buf.Len() > before && buf.Bytes()[buf.Len()-1] == '\n' {
			buf.Truncate(buf.Len() - 1)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Write renders the document and writes it to path, creating parent
// directories as needed.
func Write(path string, doc *Document) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return fmt.Errorf("indent snapshot: %w", err)
	}
	indented.WriteByte('\n')

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, indented.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// WatchlistPath names the resolved-watchlist export for a profile.
func WatchlistPath(dir, profile string) string {
	return filepath.Join(dir, textutil.SanitizeToken(profile)+"_watchlist_films.json")
}

// ProgrammePath names the programme export for a profile and run date.
func ProgrammePath(dir, profile, date string) string {
	return filepath.Join(dir, textutil.SanitizeToken(profile)+"_"+date+"_programme.json")
}
