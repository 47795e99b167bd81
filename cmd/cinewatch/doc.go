// Command cinewatch cross-references a Letterboxd watchlist against the
// Allociné showtime feed and emails an HTML digest of upcoming screenings
// near the configured subscriber.
package main
