// Package fetch builds the outbound HTTP client shared by the scrapers and
// the showtime feed.
//
// Requests retry transparently with capped exponential backoff on transient
// statuses (429 and 5xx) and connection errors, and carry the browser-like
// User-Agent and Accept-Language headers both source sites expect. The
// returned client's Transport can be handed to collectors that manage their
// own request loop.
package fetch
