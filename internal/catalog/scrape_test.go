package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinewatch/internal/catalog"
)

const listingPage = `<!DOCTYPE html>
<html><body><ul>
<li class="mdl">
  <a class="meta-title-link" href="/film/fichefilm_gen_cfilm=216086.html">Dune</a>
  <img class="thumbnail-img" data-src="https://img.example/dune.jpg">
  <div class="meta-body-item meta-body-info">15 septembre 2021 / 2h 35min</div>
</li>
<li class="mdl">
  <a class="meta-title-link" href="/film/fichefilm_gen_cfilm=10098.html">Les Évadés</a>
  <img class="thumbnail-img" src="https://img.example/shawshank.jpg">
  <div class="meta-body-item meta-body-info">1 mars 1995 / 2h 22min</div>
  <div><span>Titre original</span><span>The Shawshank Redemption</span></div>
</li>
<li class="mdl">
  <a class="meta-title-link" href="/film/no-id.html">Broken</a>
</li>
</ul></body></html>`

func TestListingScraperBuildsCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/films/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(listingPage))
	}))
	defer server.Close()

	scraper, err := catalog.NewListingScraper(server.URL, 1, 0, nil)
	if err != nil {
		t.Fatalf("NewListingScraper: %v", err)
	}

	cat, err := scraper.Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 films, got %d", cat.Len())
	}

	dune, ok := cat.Get("216086")
	if !ok {
		t.Fatal("missing film 216086")
	}
	if dune.Title != "Dune" || dune.Year != "2021" {
		t.Fatalf("unexpected entry: %+v", dune)
	}
	if dune.Poster != "https://img.example/dune.jpg" {
		t.Fatalf("unexpected poster: %q", dune.Poster)
	}

	shawshank, ok := cat.Get("10098")
	if !ok {
		t.Fatal("missing film 10098")
	}
	if shawshank.OriginalTitle != "The Shawshank Redemption" {
		t.Fatalf("unexpected original title: %q", shawshank.OriginalTitle)
	}
	if shawshank.Year != "1995" {
		t.Fatalf("unexpected year: %q", shawshank.Year)
	}
}

func TestListingScraperSkipsFailedPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	scraper, err := catalog.NewListingScraper(server.URL, 2, 0, nil)
	if err != nil {
		t.Fatalf("NewListingScraper: %v", err)
	}

	cat, err := scraper.Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cat.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d", cat.Len())
	}
}
