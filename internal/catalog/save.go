package catalog

import "cinewatch/internal/snapshot"

// Save writes the catalog back to disk in document order, so a rebuilt
// catalog diffs cleanly against its predecessor.
func Save(path string, cat *Catalog) error {
	doc := snapshot.NewDocument()
	for _, id := range cat.ids {
		doc.Set(id, cat.entries[id])
	}
	return snapshot.Write(path, doc)
}
