package stopfinder

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/lagosnav/lagosnav/pkg/util"
)

const (
	ScoreExact     = 100.0
	ScorePrefix    = 90.0
	ScoreSubstring = 80.0

	// Edit distance scores are scaled into [0, ScoreEditDistanceMax] so they always rank below a substring match
	ScoreEditDistanceMax = 70.0
)

// Similarity scores how well target matches query on a 0-100 scale
func Similarity(query string, target string) float64 {
	query = util.NormaliseName(query)
	target = util.NormaliseName(target)

	if query == target {
		return ScoreExact
	}

	if strings.HasPrefix(target, query) {
		return ScorePrefix
	}

	if strings.Contains(target, query) {
		return ScoreSubstring
	}

	maxLength := max(utf8.RuneCountInString(query), utf8.RuneCountInString(target))
	if maxLength == 0 {
		return 0
	}

	distance := levenshtein.ComputeDistance(query, target)

	return float64(maxLength-distance) / float64(maxLength) * ScoreEditDistanceMax
}
