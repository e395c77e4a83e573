package reward

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggestion is a winning name ranked against a wanted name.
type Suggestion struct {
	Name     string
	Distance int
	Score    float64
}

// Nearest ranks names by closeness to target. Exact matches score 1, names
// sharing a prefix of at least two symbols with target score 0.9, the rest
// score by edit distance. Names further than maxDist edits are dropped; a
// negative maxDist picks a limit from the length of target.
func Nearest(target string, names []string, maxDist int) []Suggestion {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" || len(names) == 0 {
		return nil
	}
	if maxDist < 0 {
		maxDist = levenshteinLimit(len(target))
	}

	out := make([]Suggestion, 0, 16)
	for _, cand := range names {
		dist := levenshtein.ComputeDistance(target, cand)
		var score float64
		switch {
		case cand == target:
			score = 1.0
		case sharedPrefix(cand, target) >= 2:
			score = 0.9 - 0.01*float64(dist)
		default:
			if dist > maxDist {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		out = append(out, Suggestion{Name: cand, Distance: dist, Score: clampScore(score)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score == out[j].Score {
			return out[i].Name < out[j].Name
		}
		return out[i].Score > out[j].Score
	})
	return out
}

func sharedPrefix(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
