// Package pipeline orchestrates a full digest run: fetch the watchlist,
// resolve each film against the catalog, aggregate showtimes over the
// subscriber's date window, export the JSON snapshots, and send the HTML
// digest. Each stage consumes the previous stage's output through small
// interfaces so commands and tests can substitute fakes for the network
// backed implementations.
package pipeline
