// Package search provides fuzzy title matching for the quick-jump overlay.
// It layers on top of the exact substring filtering in internal/view and
// never affects which entries the catalog views include.
package search

import (
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"ludex/internal/domain"
)

// Result is a fuzzy match with metadata for highlighting.
type Result struct {
	Entry          domain.Entry
	Score          int   // Higher is better (sahilm/fuzzy convention)
	MatchedIndexes []int // Rune positions in the title that matched
}

// Index holds a searchable snapshot of the collection.
type Index struct {
	entries     []domain.Entry
	lowerTitles []string // Pre-computed lowercase titles
}

// titleSource adapts a candidate subset to fuzzy.Source for ranking.
type titleSource struct {
	titles []string
}

func (s titleSource) String(i int) string { return s.titles[i] }
func (s titleSource) Len() int            { return len(s.titles) }

// NewIndex builds an index over the given entries.
func NewIndex(entries []domain.Entry) *Index {
	lower := make([]string, len(entries))
	for i, e := range entries {
		lower[i] = strings.ToLower(e.Title)
	}
	return &Index{entries: entries, lowerTitles: lower}
}

// Search returns entries whose titles fuzzily match the query, best match
// first. Candidates are narrowed with a cheap normalized match before
// ranking, so large collections don't pay for full scoring on every title.
func (idx *Index) Search(query string) []Result {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	var candidates []int
	for i, title := range idx.lowerTitles {
		if lfuzzy.MatchNormalizedFold(query, title) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	src := titleSource{titles: make([]string, len(candidates))}
	for i, c := range candidates {
		src.titles[i] = idx.lowerTitles[c]
	}

	matches := fuzzy.FindFrom(query, src)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Entry:          idx.entries[candidates[m.Index]],
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return results
}
