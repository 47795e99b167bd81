package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cinewatch/internal/snapshot"
)

func TestDocumentPreservesInsertionOrder(t *testing.T) {
	doc := snapshot.NewDocument()
	doc.Set("zebra", 1)
	doc.Set("alpha", 2)
	doc.Set("mango", 3)

	raw, err := doc.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	got := string(raw)
	zebra := strings.Index(got, "zebra")
	alpha := strings.Index(got, "alpha")
	mango := strings.Index(got, "mango")
	if !(zebra < alpha && alpha < mango) {
		t.Fatalf("keys out of insertion order: %s", got)
	}
}

func TestDocumentSetOverwritesWithoutReordering(t *testing.T) {
	doc := snapshot.NewDocument()
	doc.Set("first", "a")
	doc.Set("second", "b")
	doc.Set("first", "c")

	keys := doc.Keys()
	if len(keys) != 2 || keys[0] != "first" || keys[1] != "second" {
		t.Fatalf("unexpected keys: %v", keys)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if !strings.Contains(string(raw), `"first":"c"`) {
		t.Fatalf("overwrite lost: %s", raw)
	}
}

func TestWriteKeepsUnescapedUTF8(t *testing.T) {
	doc := snapshot.NewDocument()
	doc.Set("le-fabuleux-destin-damelie-poulain", map[string]string{
		"lb_title": "Le Fabuleux Destin d'Amélie Poulain",
		"lb_url":   "https://letterboxd.com/film/amelie/?ref=1&lang=fr",
	})

	path := filepath.Join(t.TempDir(), "out", "watchlist.json")
	if err := snapshot.Write(path, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, "Amélie") {
		t.Fatalf("expected raw UTF-8, got %s", body)
	}
	if strings.Contains(body, `&`) {
		t.Fatalf("expected unescaped ampersand, got %s", body)
	}
	if !strings.Contains(body, "  \"lb_title\"") {
		t.Fatalf("expected two-space indentation, got %s", body)
	}
}

func TestSnapshotPathsSanitizeProfile(t *testing.T) {
	dir := "/data"
	got := snapshot.WatchlistPath(dir, "Movie Goer")
	if got != filepath.Join(dir, "movie_goer_watchlist_films.json") {
		t.Fatalf("unexpected watchlist path: %s", got)
	}
	got = snapshot.ProgrammePath(dir, "moviegoer", "2026-09-01")
	if got != filepath.Join(dir, "moviegoer_2026-09-01_programme.json") {
		t.Fatalf("unexpected programme path: %s", got)
	}
}
