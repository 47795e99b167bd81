// Package catalog models the showtime site's film database: the flat JSON
// catalog document, the title index the resolver matches against, and the
// listing scraper that refreshes the document.
//
// The catalog is loaded once per run and read-only afterwards. Document order
// is preserved on load so index buckets and snapshot exports stay stable for
// a given catalog file.
package catalog
