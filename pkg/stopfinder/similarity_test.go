package stopfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityTiers(t *testing.T) {
	assert.Equal(t, 100.0, Similarity("Ikeja", "Ikeja"))
	assert.Equal(t, 100.0, Similarity("  IKEJA ", "ikeja"))
	assert.Equal(t, 90.0, Similarity("ike", "Ikeja Along"))
	assert.Equal(t, 80.0, Similarity("along", "Ikeja Along"))
}

func TestSimilarityEditDistance(t *testing.T) {
	// one substitution over five runes
	assert.InDelta(t, 56.0, Similarity("Ikaja", "Ikeja"), 1e-9)

	// nothing in common
	assert.InDelta(t, 0.0, Similarity("xyz", "abc"), 1e-9)

	// six edits over the longer seven rune query
	assert.InDelta(t, 10.0, Similarity("obalend", "ojota"), 1e-9)
}

func TestSimilarityEditDistanceNeverReachesSubstring(t *testing.T) {
	pairs := [][2]string{
		{"yabba", "yaba"},
		{"lekki phse", "lekki phase 1"},
		{"oshodii", "oshodi"},
	}

	for _, pair := range pairs {
		score := Similarity(pair[0], pair[1])
		assert.Less(t, score, ScoreSubstring, pair)
		assert.GreaterOrEqual(t, score, 0.0, pair)
	}
}

func TestSimilarityCountsRunes(t *testing.T) {
	// é is two bytes but one rune, so a single substitution over four runes
	assert.InDelta(t, 3.0/4.0*70, Similarity("café", "cafe"), 1e-9)
}
