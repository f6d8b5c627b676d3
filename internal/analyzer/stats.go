package analyzer

import (
	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
	"github.com/okneenlol123-ops/Lumina-News/internal/index"
	"github.com/okneenlol123-ops/Lumina-News/internal/sentiment"
	"github.com/okneenlol123-ops/Lumina-News/internal/token"
)

// CategoryStats are the cached aggregates of one category. The zero value
// is the identity result for an empty or unknown category.
type CategoryStats struct {
	// TokenFreq counts every token occurrence in the category's text.
	TokenFreq map[string]int
	// TopTerms ranks tokens by frequency, ties by first appearance.
	TopTerms []string
	// AvgSentiment averages per-article sentiment over articles with
	// non-blank text, bounded [-1, 1].
	AvgSentiment float64
	// AvgImportance is the arithmetic mean importance, bounded [1, 5]
	// for non-empty categories.
	AvgImportance float64
	// MonthCounts tallies articles per "YYYY-MM" bucket; articles with
	// unparseable dates are skipped, not counted.
	MonthCounts map[string]int
}

func buildStats(articles []corpus.Article) *CategoryStats {
	counter := index.NewCounter()
	months := make(map[string]int)

	var sentimentSum float64
	scoredArticles := 0
	importanceSum := 0

	for _, art := range articles {
		counter.Add(token.Tokenize(art.Text())...)
		if !art.Blank() {
			sentimentSum += sentiment.Score(art.Text())
			scoredArticles++
		}
		importanceSum += art.Rating()
		if month, ok := corpus.MonthKey(art.Date); ok {
			months[month]++
		}
	}

	st := &CategoryStats{
		TokenFreq:   counter.Counts(),
		TopTerms:    counter.Top(topTermLimit),
		MonthCounts: months,
	}
	if scoredArticles > 0 {
		st.AvgSentiment = sentimentSum / float64(scoredArticles)
	}
	if len(articles) > 0 {
		st.AvgImportance = float64(importanceSum) / float64(len(articles))
	}
	return st
}
