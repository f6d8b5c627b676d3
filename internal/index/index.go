// Package index builds the corpus-wide statistical structures: a
// Laplace-smoothed inverse-document-frequency map and the global
// token-frequency ranking. Both are computed once per corpus snapshot.
package index

import (
	"math"

	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
	"github.com/okneenlol123-ops/Lumina-News/internal/token"
)

// topTokenLimit caps the stored global ranking.
const topTokenLimit = 50

// Index holds the derived corpus statistics.
type Index struct {
	// IDF maps tokens to strictly positive weights that decrease
	// monotonically with document frequency.
	IDF map[string]float64
	// TopTokens is the corpus-wide frequency ranking (not IDF-weighted),
	// ties broken by first appearance.
	TopTokens []string
}

// Build scans every article once. Each article contributes its distinct
// token set to the document-frequency counts; N is floored at 1 so the
// smoothing term never divides by zero.
func Build(c *corpus.Corpus) *Index {
	df := make(map[string]int)
	freq := NewCounter()

	n := 0
	for _, a := range c.All() {
		n++
		tokens := token.Tokenize(a.Text())
		freq.Add(tokens...)
		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}
	if n == 0 {
		n = 1
	}

	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log(float64(n+1)/float64(d+1)) + 1
	}

	return &Index{IDF: idf, TopTokens: freq.Top(topTokenLimit)}
}
