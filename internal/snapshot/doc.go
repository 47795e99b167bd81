// Package snapshot writes the per-run JSON exports.
//
// Exports are audit artifacts, not a persistence layer: each run rewrites
// them wholesale. Keys are emitted in insertion order so a snapshot reads in
// the same order the run processed its items, with two-space indentation and
// unescaped UTF-8.
package snapshot
