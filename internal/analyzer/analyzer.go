// Package analyzer owns the derived analytics for one corpus snapshot.
// Everything heavy — the IDF map, the global keyword ranking and the
// per-category aggregates — is computed exactly once, on the first call to
// any accessor. After that the analyzer is immutable; a changed corpus
// requires a new Analyzer, there is no partial invalidation.
package analyzer

import (
	"sort"
	"strings"
	"sync"

	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
	"github.com/okneenlol123-ops/Lumina-News/internal/headline"
	"github.com/okneenlol123-ops/Lumina-News/internal/index"
	"github.com/okneenlol123-ops/Lumina-News/internal/sentiment"
	"github.com/okneenlol123-ops/Lumina-News/internal/summarize"
)

const (
	// topTermLimit caps the per-category term ranking kept in the cache.
	topTermLimit = 20
	// importantTermCount is how many global keywords bias headline scores.
	importantTermCount = 8
	// DefaultHeadlines is the headline list size when none is given.
	DefaultHeadlines = 10
)

// MonthCount is one point of a trend series.
type MonthCount struct {
	Month string
	Count int
}

// ScoredHeadline pairs an article with its headline score.
type ScoredHeadline struct {
	Score   float64
	Article corpus.Article
}

// Analyzer lazily derives analytics from a corpus snapshot. The zero value
// is not usable; construct with New. Safe for concurrent use: the one-time
// build is guarded and all later reads hit immutable state.
type Analyzer struct {
	corpus         *corpus.Corpus
	importantTerms []string

	once  sync.Once
	idx   *index.Index
	stats map[string]*CategoryStats
}

// New builds an analyzer over a corpus snapshot. Caller-supplied important
// terms bias headline scores on top of the global top keywords.
func New(c *corpus.Corpus, importantTerms ...string) *Analyzer {
	if c == nil {
		c = corpus.New()
	}
	return &Analyzer{corpus: c, importantTerms: importantTerms}
}

func (a *Analyzer) init() {
	a.once.Do(func() {
		a.idx = index.Build(a.corpus)
		a.stats = make(map[string]*CategoryStats, len(a.corpus.Categories()))
		for _, cat := range a.corpus.Categories() {
			a.stats[cat] = buildStats(a.corpus.Articles(cat))
		}
	})
}

// Categories returns the corpus categories in canonical order.
func (a *Analyzer) Categories() []string {
	return a.corpus.Categories()
}

// TopKeywords returns the n most frequent tokens across the whole corpus.
func (a *Analyzer) TopKeywords(n int) []string {
	a.init()
	return head(a.idx.TopTokens, n)
}

// TopTerms returns the n most frequent tokens of one category.
func (a *Analyzer) TopTerms(category string, n int) []string {
	a.init()
	st, ok := a.stats[category]
	if !ok {
		return nil
	}
	return head(st.TopTerms, n)
}

// CategorySummary returns the cached aggregate stats of a category.
// Unknown categories yield zero-valued stats.
func (a *Analyzer) CategorySummary(category string) CategoryStats {
	a.init()
	if st, ok := a.stats[category]; ok {
		return *st
	}
	return CategoryStats{}
}

// SentimentDistribution counts articles per sentiment band. An empty
// category name spans the whole corpus. All three bands are always present
// in the result.
func (a *Analyzer) SentimentDistribution(category string) map[sentiment.Label]int {
	a.init()
	dist := map[sentiment.Label]int{
		sentiment.Positive: 0,
		sentiment.Neutral:  0,
		sentiment.Negative: 0,
	}
	var articles []corpus.Article
	if category == "" {
		articles = a.corpus.All()
	} else {
		articles = a.corpus.Articles(category)
	}
	for _, art := range articles {
		dist[sentiment.Classify(sentiment.Score(art.Text()))]++
	}
	return dist
}

// TopHeadlines scores every article of a category and returns the n best,
// descending by score, ties keeping article order. The global top keywords
// plus any configured important terms serve as the important-term bias.
func (a *Analyzer) TopHeadlines(category string, n int) []ScoredHeadline {
	a.init()
	if n <= 0 {
		n = DefaultHeadlines
	}
	terms := a.scoringTerms()

	articles := a.corpus.Articles(category)
	scored := make([]ScoredHeadline, 0, len(articles))
	for _, art := range articles {
		scored = append(scored, ScoredHeadline{
			Score:   headline.Score(art, a.idx.IDF, terms),
			Article: art,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if n < len(scored) {
		scored = scored[:n]
	}
	return scored
}

// HeadlineScore scores a single article against the cached corpus index.
func (a *Analyzer) HeadlineScore(art corpus.Article) float64 {
	a.init()
	return headline.Score(art, a.idx.IDF, a.scoringTerms())
}

// scoringTerms combines the global top keywords with the configured
// important terms. A fresh slice, so appending never aliases TopTokens.
func (a *Analyzer) scoringTerms() []string {
	base := head(a.idx.TopTokens, importantTermCount)
	terms := make([]string, 0, len(base)+len(a.importantTerms))
	terms = append(terms, base...)
	terms = append(terms, a.importantTerms...)
	return terms
}

// TrendSeries returns the month-bucketed article counts of a category,
// ascending by month key.
func (a *Analyzer) TrendSeries(category string) []MonthCount {
	a.init()
	st, ok := a.stats[category]
	if !ok {
		return nil
	}
	months := make([]string, 0, len(st.MonthCounts))
	for m := range st.MonthCounts {
		months = append(months, m)
	}
	sort.Strings(months)
	series := make([]MonthCount, len(months))
	for i, m := range months {
		series[i] = MonthCount{Month: m, Count: st.MonthCounts[m]}
	}
	return series
}

// SummarizeCategory builds an extractive summary over all descriptions of
// a category.
func (a *Analyzer) SummarizeCategory(category string, maxSentences int) string {
	var parts []string
	for _, art := range a.corpus.Articles(category) {
		if art.Description != "" {
			parts = append(parts, art.Description)
		}
	}
	return summarize.Summarize(strings.Join(parts, " "), maxSentences)
}

// IDF exposes the cached IDF map for callers scoring articles themselves.
func (a *Analyzer) IDF() map[string]float64 {
	a.init()
	return a.idx.IDF
}

func head(s []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if n < len(s) {
		return s[:n]
	}
	return s
}
