package resolver_test

import (
	"testing"

	"cinewatch/internal/catalog"
	"cinewatch/internal/resolver"
)

func buildIndex(t *testing.T, entries map[string]catalog.Entry, order []string) *catalog.Index {
	t.Helper()
	cat := catalog.New()
	for _, id := range order {
		cat.Add(id, entries[id])
	}
	return catalog.BuildIndex(cat)
}

func TestResolveExactTitleWithoutYear(t *testing.T) {
	idx := buildIndex(t, map[string]catalog.Entry{
		"1": {Title: "Dune", Year: "2021"},
		"2": {Title: "Alien", Year: "1979"},
	}, []string{"1", "2"})
	r := resolver.New(idx)

	id, err := r.Resolve("Dune", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "1" {
		t.Fatalf("Resolve = %q, want 1", id)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	idx := buildIndex(t, map[string]catalog.Entry{
		"1": {Title: "Dune", Year: "1984"},
		"2": {Title: "Dune", Year: "2021"},
		"3": {Title: "June", Year: "2021"},
	}, []string{"1", "2", "3"})
	r := resolver.New(idx)

	first, err := r.Resolve("Dune", "2021")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := r.Resolve("Dune", "2021")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got != first {
			t.Fatalf("Resolve not deterministic: %q then %q", first, got)
		}
	}
}

func TestResolveYearFilterWidensPastBestTitle(t *testing.T) {
	// The closest title match carries the wrong decade; a slightly worse
	// match holds the film whose year fits. The year filter must recover it.
	idx := buildIndex(t, map[string]catalog.Entry{
		"old": {Title: "Nosferatu", Year: "1922"},
		"new": {Title: "Nosferatu le vampire", Year: "2024"},
	}, []string{"old", "new"})
	r := resolver.New(idx)

	id, err := r.Resolve("Nosferatu", "2024")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "new" {
		t.Fatalf("Resolve = %q, want new", id)
	}
}

func TestResolveYearWindowBoundaries(t *testing.T) {
	idx := buildIndex(t, map[string]catalog.Entry{
		"1": {Title: "Solaris", Year: "1972"},
	}, []string{"1"})
	r := resolver.New(idx)

	tests := []struct {
		year string
		want string
	}{
		{"1977", "1"}, // +5, inside
		{"1967", "1"}, // -5, inside
		{"1978", ""},  // +6, outside
		{"1966", ""},  // -6, outside
	}
	for _, tt := range tests {
		got, err := r.Resolve("Solaris", tt.year)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tt.year, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(year=%s) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestResolveAccentInsensitive(t *testing.T) {
	idx := buildIndex(t, map[string]catalog.Entry{
		"7": {Title: "Les Misérables", Year: "2019"},
	}, []string{"7"})
	r := resolver.New(idx)

	id, err := r.Resolve("Les Miserables", "2019")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "7" {
		t.Fatalf("Resolve = %q, want 7", id)
	}
}

func TestResolveEmptyIndex(t *testing.T) {
	r := resolver.New(catalog.BuildIndex(catalog.New()))

	id, err := r.Resolve("Dune", "2021")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no match on empty index, got %q", id)
	}
}

func TestResolveRejectsUnparseableYear(t *testing.T) {
	idx := buildIndex(t, map[string]catalog.Entry{
		"1": {Title: "Dune", Year: "2021"},
	}, []string{"1"})
	r := resolver.New(idx)

	if _, err := r.Resolve("Dune", "MMXXI"); err == nil {
		t.Fatal("expected error for non-numeric year")
	}
}

func TestResolveSkipsCandidatesWithUnparseableYears(t *testing.T) {
	idx := buildIndex(t, map[string]catalog.Entry{
		"bad":  {Title: "Dune", Year: "unknown"},
		"good": {Title: "Dune", Year: "2021"},
	}, []string{"bad", "good"})
	r := resolver.New(idx)

	id, err := r.Resolve("Dune", "2021")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != "good" {
		t.Fatalf("Resolve = %q, want good", id)
	}
}
