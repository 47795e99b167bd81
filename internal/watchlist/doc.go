// Package watchlist fetches a subscriber's film watchlist from the tracking
// site: the paginated list of film slugs, then each film's detail page for
// title, original title, and release year.
//
// Fetch failures skip the affected page or film and keep going; the run
// works with whatever the site yielded.
package watchlist
