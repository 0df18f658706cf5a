package planner

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions caps how many near names are offered
const maxSuggestions = 3

// distanceLimit scales the allowed edit distance with the query length
func distanceLimit(query string) int {
	n := len([]rune(query))
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

// suggestNames returns up to maxSuggestions names near the query, nearest
// first and then by name. Comparison ignores case.
func suggestNames(query string, names []string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	type candidate struct {
		name     string
		distance int
	}

	limit := distanceLimit(query)
	var candidates []candidate
	for _, name := range names {
		d := levenshtein.ComputeDistance(query, strings.ToLower(name))
		if d <= limit {
			candidates = append(candidates, candidate{name: name, distance: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.name)
	}
	return out
}
