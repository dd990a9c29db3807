// Package systems carries the built-in tuning-system datasets. They are
// compiled-in Go data, not parsed configuration: hosts that load their own
// bundles from elsewhere never touch this package.
package systems

import (
	"fmt"

	"github.com/tmeridew/edofunc/harmony"
	"github.com/tmeridew/edofunc/interval"
	"github.com/tmeridew/edofunc/model"
)

// All returns every built-in bundle, smallest EDO first.
func All() []model.Bundle {
	return []model.Bundle{Twelve(), Seventeen(), TwentyTwo(), TwentySeven()}
}

// templatesFromTriads zips generated triads with parallel name columns, one
// column per notation style. Every column must cover every triad.
func templatesFromTriads(triads [][]int, styles map[string][]string) []model.ChordTemplate {
	out := make([]model.ChordTemplate, len(triads))
	for i, triad := range triads {
		names := make(map[string]string, len(styles))
		for style, col := range styles {
			names[style] = col[i]
		}
		out[i] = model.ChordTemplate{Intervals: triad, Names: names}
	}
	return out
}

func numbers(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%d", i)
	}
	return out
}

// Twelve is standard western tuning. Templates cover the usual triads,
// suspensions and sevenths; the three notation styles are full names,
// short names and chord symbols.
func Twelve() model.Bundle {
	tmpl := func(intervals []int, full, standard, symbol string) model.ChordTemplate {
		return model.ChordTemplate{
			Intervals: intervals,
			Names:     map[string]string{"full": full, "standard": standard, "symbols": symbol},
		}
	}
	return model.Bundle{
		Steps: 12,
		Qualities: []model.QualityCode{
			"s", "o", "u", "m", "m", "u", "o", "s", "l", "h", "h", "l",
		},
		LeadingTargets: map[int]int{
			8:  7, // m6 falls to the fifth
			11: 0, // M7 rises to the root
		},
		DominantLeading: []int{11},
		Templates: []model.ChordTemplate{
			tmpl([]int{0, 4, 7}, "Major", "maj", "M"),
			tmpl([]int{0, 3, 7}, "Minor", "min", "m"),
			tmpl([]int{0, 3, 6}, "Diminished", "dim", "o"),
			tmpl([]int{0, 4, 8}, "Augmented", "aug", "+"),
			tmpl([]int{0, 5, 7}, "Suspended 4th", "sus4", "sus4"),
			tmpl([]int{0, 2, 7}, "Suspended 2nd", "sus2", "sus2"),
			tmpl([]int{0, 4, 7, 10}, "Dominant 7th", "dom7", "7"),
			tmpl([]int{0, 4, 7, 11}, "Major 7th", "maj7", "M7"),
			tmpl([]int{0, 3, 7, 10}, "Minor 7th", "min7", "m7"),
			tmpl([]int{0, 3, 6, 10}, "Half-diminished 7th", "m7b5", "ø7"),
			tmpl([]int{0, 3, 6, 9}, "Diminished 7th", "dim7", "o7"),
		},
		NoteNames: map[string][]string{
			"default": {"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"},
			"flats":   {"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"},
			"numbers": numbers(12),
			// Scale degrees carry the upper octave as a 13th entry.
			"roman": {"I", "bII", "II", "bIII", "III", "IV", "#IV", "V", "bVI", "VI", "bVII", "VII", "I"},
		},
		CurrentNoteNames: "default",
	}
}

// Seventeen splits the fourth-to-third space finely enough for distinct
// minor, neutral and major thirds (4, 5 and 6 steps). Only the full and
// standard notation styles exist here.
func Seventeen() model.Bundle {
	qualities := interval.GenerateQualities(17)
	full := []string{
		"minor dim", "minor down five", "neutral down five",
		"minor", "neutral", "major",
		"neutral up five", "major up five", "major aug",
	}
	standard := []string{
		"mdim", "mv5", "nv5",
		"min", "neu", "maj",
		"n^5", "M^5", "maug",
	}
	return model.Bundle{
		Steps:     17,
		Qualities: qualities,
		LeadingTargets: map[int]int{
			11: 10,
			12: 10,
			15: 0,
			16: 0,
		},
		DominantLeading: []int{15, 16},
		Templates: templatesFromTriads(
			harmony.GenerateTriads(17, qualities),
			map[string][]string{"full": full, "standard": standard},
		),
		NoteNames: map[string][]string{
			"default": {
				"C", "Db", "C#", "D", "Eb", "D#", "E", "F", "Gb",
				"F#", "G", "Ab", "G#", "A", "Bb", "A#", "B",
			},
			"numbers": numbers(17),
		},
		CurrentNoteNames: "default",
	}
}

// TwentyTwo has four thirds (5..8 steps); its sixteen triads are named
// descriptively after their third and fifth sizes.
func TwentyTwo() model.Bundle {
	qualities := interval.GenerateQualities(22)
	full := []string{
		"Subdiminished",
		"Subminor up-flat five", "Diminished",
		"Subminor down five", "Minor down five", "Down-five",
		"Subminor", "Minor", "Major", "Supermajor",
		"Minor up five", "Augmented", "Supermajor up five",
		"Down-sharp five", "Supermajor down-sharp five",
		"Supermajor sharp five",
	}
	standard := []string{
		"sdim",
		"s^b5", "dim",
		"sv5", "mv5", "v5",
		"sub", "min", "maj", "sup",
		"m^5", "aug", "S^5",
		"v#5", "Sv#5",
		"S#5",
	}
	return model.Bundle{
		Steps:     22,
		Qualities: qualities,
		LeadingTargets: map[int]int{
			14: 13,
			15: 13,
			20: 0,
			21: 0,
		},
		DominantLeading: []int{20, 21},
		Templates: templatesFromTriads(
			harmony.GenerateTriads(22, qualities),
			map[string][]string{"full": full, "standard": standard},
		),
		NoteNames: map[string][]string{
			"numbers": numbers(22),
		},
		CurrentNoteNames: "numbers",
	}
}

// TwentySeven has five thirds (subminor through supermajor, 6..10 steps)
// giving twenty-five triads, named in both temperament and descriptive
// notation. Ordered by fifth then third, matching GenerateTriads.
func TwentySeven() model.Bundle {
	qualities := interval.GenerateQualities(27)
	temperament := []string{
		"dim=",
		"dim-", "dim+",
		"o-", "dim", "o+",
		"l-", "r-", "r+", "l+",
		"s", "m", "n", "M", "S",
		"i-", "k-", "h+", "i+",
		"h-", "aug", "k",
		"k+", "h",
		"i",
	}
	descriptive := []string{
		"dim=",
		"dim-", "dim+",
		"msh-", "dim", "msh+",
		"mav-", "arc-", "arc+", "mav+",
		"sub", "min", "neu", "maj", "sup",
		"mac-", "dic-", "hyr+", "mac+",
		"hyr-", "aug", "dic",
		"dic+", "hyr",
		"mac",
	}
	full := make([]string, len(descriptive))
	for i := range descriptive {
		full[i] = fmt.Sprintf("%s (%s)", descriptive[i], temperament[i])
	}
	return model.Bundle{
		Steps:     27,
		Qualities: qualities,
		LeadingTargets: map[int]int{
			19: 18, // M6 falls to the fifth
			25: 0,  // m7 rises to the root
			26: 0,  // M7 rises to the root
		},
		DominantLeading: []int{25, 26},
		Templates: templatesFromTriads(
			harmony.GenerateTriads(27, qualities),
			map[string][]string{
				"full":        full,
				"standard":    descriptive,
				"temperament": temperament,
			},
		),
		NoteNames: map[string][]string{
			"numbers": numbers(27),
			"letters": {
				"C", "Db", "^Db", "vD", "D", "Eb", "^Eb", "vE", "E",
				"F", "^F", "vF#", "F#", "vG", "G", "^G", "vG#", "G#",
				// 25 is the enharmonic C a step below the octave.
				"vA", "A", "Bb", "^Bb", "vB", "B", "vC", "C", "^C",
			},
		},
		CurrentNoteNames: "numbers",
	}
}
