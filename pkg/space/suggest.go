package space

import "github.com/agext/levenshtein"

// maxSuggestionDistance is the largest edit distance still offered as a
// suggestion.
const maxSuggestionDistance = 2

// suggestName returns the known name closest to unknown, or "" if none is
// within maxSuggestionDistance edits. Ties keep the earlier name.
func suggestName(unknown string, known []string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, name := range known {
		if dist := levenshtein.Distance(unknown, name, nil); dist < bestDist {
			best, bestDist = name, dist
		}
	}
	return best
}
