// Package sentiment scores text against small fixed German word lists.
// A token counts as positive or negative when a lexicon stem appears
// anywhere inside it; this substring rule keeps the lexicon small and is
// part of the scoring contract, so scores are only comparable between
// implementations sharing it.
package sentiment

import (
	"strings"

	"github.com/okneenlol123-ops/Lumina-News/internal/token"
)

// Label classifies a sentiment score into one of three bands.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Band thresholds: scores above +0.2 are positive, below -0.2 negative.
const threshold = 0.2

var positiveStems = []string{
	"gut", "stark", "erfolgreich", "verbessert", "gewinnt", "begrüßt",
	"optimistisch", "stabil", "steigerung", "gewinn", "sicher", "förder",
	"förderung", "unterstützt", "erholen", "aufwind", "positive",
	"verbesserung", "win",
}

var negativeStems = []string{
	"kritisch", "warn", "warnen", "risiko", "risiken", "verlust", "problem",
	"schwier", "krise", "fragil", "stagn", "einbruch", "verzöger", "engpass",
	"kritik", "mangel", "unsicher", "sorge", "problematisch",
}

// Score rates text in [-1, 1]. Each token matching a positive stem counts
// once positive, each matching a negative stem once negative; a token may
// count in both buckets. No matches at all yields exactly 0.
func Score(text string) float64 {
	var pos, neg int
	for _, t := range token.Tokenize(text) {
		if containsAny(t, positiveStems) {
			pos++
		}
		if containsAny(t, negativeStems) {
			neg++
		}
	}
	total := pos + neg
	if total == 0 {
		return 0.0
	}
	return float64(pos-neg) / float64(total)
}

// Classify maps a score onto its band.
func Classify(score float64) Label {
	switch {
	case score > threshold:
		return Positive
	case score < -threshold:
		return Negative
	default:
		return Neutral
	}
}

// Labels returns all bands in display order.
func Labels() []Label {
	return []Label{Positive, Neutral, Negative}
}

func containsAny(tok string, stems []string) bool {
	for _, stem := range stems {
		if strings.Contains(tok, stem) {
			return true
		}
	}
	return false
}
