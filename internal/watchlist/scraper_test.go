package watchlist_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinewatch/internal/watchlist"
)

func watchlistPage(slugs ...string) string {
	body := `<html><body><ul>`
	for _, slug := range slugs {
		body += fmt.Sprintf(`<li class="poster-container"><div data-film-slug=%q></div></li>`, slug)
	}
	body += `</ul></body></html>`
	return body
}

func filmPage(title, original, year string) string {
	body := `<html><body><div class="details"><h1 class="headline-1"><span>` + title + `</span></h1>`
	if original != "" {
		body += `<h2 class="originalname"><em>` + original + `</em></h2>`
	}
	if year != "" {
		body += `<span class="releasedate"> ` + year + ` </span>`
	}
	body += `</div></body></html>`
	return body
}

func newSite(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestFetchSinglePageWatchlist(t *testing.T) {
	server := newSite(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/moviegoer/watchlist/", "/moviegoer/watchlist/page/1/":
			fmt.Fprint(w, watchlistPage("dune-part-two", "amelie"))
		case "/film/dune-part-two/":
			fmt.Fprint(w, filmPage("Dune: Part Two", "", "2024"))
		case "/film/amelie/":
			fmt.Fprint(w, filmPage("Amélie", "Le Fabuleux Destin d'Amélie Poulain", "2001"))
		default:
			http.NotFound(w, r)
		}
	})

	scraper, err := watchlist.NewScraper(server.URL, "moviegoer", 0, nil, nil)
	if err != nil {
		t.Fatalf("NewScraper: %v", err)
	}

	entries, err := scraper.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Slug != "dune-part-two" || entries[0].Title != "Dune: Part Two" || entries[0].Year != "2024" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].OriginalTitle != "Le Fabuleux Destin d'Amélie Poulain" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
	if entries[1].PreferredTitle() != "Le Fabuleux Destin d'Amélie Poulain" {
		t.Fatalf("preferred title should use original: %q", entries[1].PreferredTitle())
	}
}

func TestFetchFollowsPaginator(t *testing.T) {
	server := newSite(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/moviegoer/watchlist/":
			fmt.Fprint(w, `<html><body><div class="paginate-pages"><a>1</a><a>2</a></div></body></html>`)
		case "/moviegoer/watchlist/page/1/":
			fmt.Fprint(w, watchlistPage("first-film"))
		case "/moviegoer/watchlist/page/2/":
			fmt.Fprint(w, watchlistPage("second-film"))
		case "/film/first-film/":
			fmt.Fprint(w, filmPage("First Film", "", "2020"))
		case "/film/second-film/":
			fmt.Fprint(w, filmPage("Second Film", "", "2021"))
		default:
			http.NotFound(w, r)
		}
	})

	scraper, err := watchlist.NewScraper(server.URL, "moviegoer", 0, nil, nil)
	if err != nil {
		t.Fatalf("NewScraper: %v", err)
	}

	entries, err := scraper.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected entries from both pages, got %d", len(entries))
	}
	if entries[0].Slug != "first-film" || entries[1].Slug != "second-film" {
		t.Fatalf("entries out of site order: %+v", entries)
	}
}

func TestFetchSkipsBrokenFilmPages(t *testing.T) {
	server := newSite(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/moviegoer/watchlist/", "/moviegoer/watchlist/page/1/":
			fmt.Fprint(w, watchlistPage("good-film", "broken-film"))
		case "/film/good-film/":
			fmt.Fprint(w, filmPage("Good Film", "", "2022"))
		default:
			http.NotFound(w, r)
		}
	})

	scraper, err := watchlist.NewScraper(server.URL, "moviegoer", 0, nil, nil)
	if err != nil {
		t.Fatalf("NewScraper: %v", err)
	}

	entries, err := scraper.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(entries) != 1 || entries[0].Slug != "good-film" {
		t.Fatalf("expected only the reachable film, got %+v", entries)
	}
}
