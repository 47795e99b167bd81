// Package resolver bridges watchlist entries to catalog ids by fuzzy title
// matching with an optional release-year window.
//
// Matching always keeps the ten nearest titles regardless of how weak the
// similarity is. When a year is supplied the candidate pool widens across all
// ten matched titles before the year filter runs: reissues and shared titles
// can rank the correct film below an unrelated same-title film, and the year
// filter recovers it. The trade-off is that a lower-similarity title whose
// year fits can win over a closer title whose year does not.
package resolver
