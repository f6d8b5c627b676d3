// Package headline blends an article's editorial importance, sentiment,
// title length and keyword rarity into a single 0-100 ranking score. The
// weights are a hand-tuned heuristic; changing any of them breaks score
// comparability across corpora, so they are fixed constants.
package headline

import (
	"math"
	"strings"

	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
	"github.com/okneenlol123-ops/Lumina-News/internal/sentiment"
	"github.com/okneenlol123-ops/Lumina-News/internal/token"
)

const (
	weightImportance = 10.0
	weightSentiment  = 8.0
	weightRarity     = 2.0
	termBonus        = 4.0

	// Titles near nine significant tokens earn up to lengthBonusMax,
	// tapering linearly on both sides.
	lengthTarget   = 9
	lengthBonusMax = 8.0
)

// Breakdown shows how each component contributed to the final score.
type Breakdown struct {
	Base      float64
	Sentiment float64
	Length    float64
	Rarity    float64
	Keywords  float64
	Final     float64
}

// Score computes the 0-100 headline score. The IDF map may be nil (rarity
// contributes nothing) and importantTerms may be empty.
func Score(a corpus.Article, idf map[string]float64, importantTerms []string) float64 {
	return ScoreWithBreakdown(a, idf, importantTerms).Final
}

// ScoreWithBreakdown computes the headline score with component details.
// The raw sum is clamped to [-100, 100] before being mapped linearly onto
// [0, 100]; clamping first keeps extreme rarity sums comparable.
func ScoreWithBreakdown(a corpus.Article, idf map[string]float64, importantTerms []string) Breakdown {
	b := Breakdown{
		Base:      float64(a.Rating()) * weightImportance,
		Sentiment: sentiment.Score(a.Text()) * weightSentiment,
	}

	titleTokens := token.Tokenize(a.Title)
	b.Length = lengthBonus(len(titleTokens))

	seen := make(map[string]bool, len(titleTokens))
	for _, t := range titleTokens {
		if seen[t] {
			continue
		}
		seen[t] = true
		b.Rarity += idf[t] * weightRarity
	}

	text := strings.ToLower(a.Text())
	for _, term := range importantTerms {
		term = strings.ToLower(term)
		if term != "" && strings.Contains(text, term) {
			b.Keywords += termBonus
		}
	}

	raw := b.Base + b.Sentiment + b.Length + b.Rarity + b.Keywords
	raw = math.Max(-100.0, math.Min(100.0, raw))
	b.Final = math.Round((raw+100.0)/2.0*10) / 10
	return b
}

func lengthBonus(tokens int) float64 {
	bonus := lengthBonusMax - math.Abs(float64(tokens-lengthTarget))
	if bonus < 0 {
		return 0
	}
	return bonus
}
