// Package view computes derived, read-only projections of the catalog:
// the filtered entry list, the distinct platform set, and per-status
// counts. Everything here is a pure function of its inputs; projections
// are recomputed on demand rather than cached, which is plenty for
// personal-catalog sizes.
package view

import (
	"sort"
	"strings"

	"ludex/internal/domain"
)

// All is the sentinel filter value matching every platform or status.
const All = "all"

// Filter returns the entries matching all three predicates, preserving
// insertion order. The search term matches case-insensitively against
// title or genre; platform and status filters match exactly or pass
// everything when set to All.
func Filter(entries []domain.Entry, term, platform, status string) []domain.Entry {
	term = strings.ToLower(term)

	var out []domain.Entry
	for _, e := range entries {
		if !matchesTerm(e, term) {
			continue
		}
		if platform != All && platform != "" && e.Platform != platform {
			continue
		}
		if status != All && status != "" && string(e.Status) != status {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesTerm(e domain.Entry, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Genre), term)
}

// Platforms returns the distinct platform values across the collection,
// sorted for stable display.
func Platforms(entries []domain.Entry) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if !seen[e.Platform] {
			seen[e.Platform] = true
			out = append(out, e.Platform)
		}
	}
	sort.Strings(out)
	return out
}

// StatusCounts returns the number of entries per status. Out-of-range
// statuses count as unplayed, mirroring the load-time coercion.
func StatusCounts(entries []domain.Entry) map[domain.Status]int {
	counts := make(map[domain.Status]int, len(domain.Statuses))
	for _, e := range entries {
		counts[domain.ParseStatus(string(e.Status))]++
	}
	return counts
}
