package resolver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/adrg/strutil/metrics"

	"cinewatch/internal/catalog"
	"cinewatch/internal/textutil"
)

// maxMatches bounds how many nearest titles feed the candidate pool.
const maxMatches = 10

// yearWindow is the accepted distance between the watchlist year and a
// candidate's catalog year. Catalog years are release-in-country dates and
// can drift several years from the original release.
const yearWindow = 5

// Resolver matches free-text titles against a catalog index.
type Resolver struct {
	index  *catalog.Index
	metric *metrics.SorensenDice
	titles []string
	folded []string
}

// New builds a resolver over the given index. The folded comparison forms are
// precomputed once since the index is immutable for the run.
func New(index *catalog.Index) *Resolver {
	titles := index.Titles()
	folded := make([]string, len(titles))
	for i, title := range titles {
		folded[i] = textutil.FoldTitle(title)
	}
	return &Resolver{
		index:  index,
		metric: metrics.NewSorensenDice(),
		titles: titles,
		folded: folded,
	}
}

// Resolve returns the catalog id best matching title, or "" when the index
// holds no acceptable candidate. A non-empty year must parse as an integer;
// anything else is a configuration error. Absence of a match is a normal
// empty result, never an error.
func (r *Resolver) Resolve(title, year string) (string, error) {
	year = strings.TrimSpace(year)
	var target int
	hasYear := year != ""
	if hasYear {
		parsed, err := strconv.Atoi(year)
		if err != nil {
			return "", fmt.Errorf("release year %q is not a number", year)
		}
		target = parsed
	}

	matches := r.rank(title)
	if len(matches) == 0 {
		return "", nil
	}

	if !hasYear {
		candidates := r.index.Candidates(matches[0])
		if len(candidates) == 0 {
			return "", nil
		}
		return candidates[0].ID, nil
	}

	// Flatten candidates across every matched title in rank order before
	// filtering by year; see the package comment for why the pool widens.
	for _, match := range matches {
		for _, candidate := range r.index.Candidates(match) {
			candidateYear, err := strconv.Atoi(strings.TrimSpace(candidate.Year))
			if err != nil {
				continue
			}
			if candidateYear >= target-yearWindow && candidateYear <= target+yearWindow {
				return candidate.ID, nil
			}
		}
	}
	return "", nil
}

// rank returns up to maxMatches index titles ordered by descending similarity
// to target. Ties keep index insertion order, so ranking is deterministic for
// a given index.
func (r *Resolver) rank(target string) []string {
	if len(r.titles) == 0 {
		return nil
	}
	foldedTarget := textutil.FoldTitle(target)

	order := make([]int, len(r.titles))
	scores := make([]float64, len(r.titles))
	for i := range r.titles {
		order[i] = i
		scores[i] = r.metric.Compare(foldedTarget, r.folded[i])
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	limit := maxMatches
	if limit > len(order) {
		limit = len(order)
	}
	matches := make([]string, 0, limit)
	for _, idx := range order[:limit] {
		matches = append(matches, r.titles[idx])
	}
	return matches
}
