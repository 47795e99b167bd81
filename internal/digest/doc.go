// Package digest renders the HTML screening summary and delivers it over
// SMTP. The message body is a self-contained table layout so it displays
// consistently across mail clients, with one card per film, day headers,
// and a closing notice for watchlist films that could not be matched to
// the showtime catalog.
package digest
