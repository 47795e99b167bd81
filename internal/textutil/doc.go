// Package textutil provides text normalization helpers shared by title
// matching and snapshot naming.
package textutil
