package harmony

import (
	"golang.org/x/exp/slices"

	"github.com/tmeridew/edofunc/chordmatch"
	"github.com/tmeridew/edofunc/model"
)

// GenerateTriads builds every root+third+fifth shape reachable by stacking
// two modal ('m') intervals from a quality list, deduplicated and sorted by
// fifth then third. A bundle-authoring helper: the built-in datasets for the
// larger EDOs were produced this way.
func GenerateTriads(n int, qualities []model.QualityCode) [][]int {
	var thirds []int
	for i, q := range qualities {
		if i > 0 && q == model.QualityModal {
			thirds = append(thirds, i)
		}
	}

	seen := make(map[string]bool)
	var triads [][]int
	for _, lower := range thirds {
		for _, upper := range thirds {
			fifth := (lower + upper) % n
			triad := []int{0, lower, fifth}
			key := chordmatch.Key(triad)
			if seen[key] {
				continue
			}
			seen[key] = true
			triads = append(triads, triad)
		}
	}

	slices.SortFunc(triads, func(a, b []int) int {
		if a[2] != b[2] {
			return a[2] - b[2]
		}
		return a[1] - b[1]
	})
	return triads
}
