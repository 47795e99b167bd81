package catalog

// Candidate pairs a catalog id with its release year for year-windowed
// matching.
type Candidate struct {
	ID   string `json:"ac_id"`
	Year string `json:"ac_year"`
}

// Index maps a preferred title to its candidates, keeping titles in
// first-seen order so matching is deterministic for a given catalog.
type Index struct {
	titles  []string
	buckets map[string][]Candidate
}

// BuildIndex derives the title index from a catalog. Entries without a usable
// title are skipped; identical (title, year) pairs are preserved, so sequels
// and reissues sharing a title all remain candidates.
func BuildIndex(cat *Catalog) *Index {
	idx := &Index{buckets: make(map[string][]Candidate)}
	if cat == nil {
		return idx
	}
	for _, id := range cat.ids {
		entry := cat.entries[id]
		title := entry.PreferredTitle()
		if title == "" {
			continue
		}
		if _, ok := idx.buckets[title]; !ok {
			idx.titles = append(idx.titles, title)
		}
		idx.buckets[title] = append(idx.buckets[title], Candidate{ID: id, Year: entry.Year})
	}
	return idx
}

// Titles returns the indexed titles in insertion order.
func (i *Index) Titles() []string {
	out := make([]string, len(i.titles))
	copy(out, i.titles)
	return out
}

// Candidates returns the candidate list for an exact title key.
func (i *Index) Candidates(title string) []Candidate {
	return i.buckets[title]
}

// Len reports the number of distinct indexed titles.
func (i *Index) Len() int {
	return len(i.titles)
}
