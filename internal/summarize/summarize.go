// Package summarize selects the most informative sentences of a text block
// using a token-frequency table built over the whole input.
//
// Selected sentences are emitted in score-descending order, not original
// reading order. That matches the long-standing behavior of the scoring
// pipeline this feeds; see DESIGN.md before changing it.
package summarize

import (
	"sort"
	"strings"
	"unicode"

	"github.com/okneenlol123-ops/Lumina-News/internal/token"
)

// DefaultSentences is used when the caller passes a non-positive limit.
const DefaultSentences = 2

// Summarize returns up to maxSentences sentences of text, ranked by the
// summed corpus-local frequency of their tokens. Ties keep first-seen
// order. Empty input yields an empty string.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultSentences
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	freq := make(map[string]int)
	for _, t := range token.Tokenize(text) {
		freq[t]++
	}

	type scored struct {
		sentence string
		score    int
	}
	ranked := make([]scored, 0, len(sentences))
	for _, s := range sentences {
		sum := 0
		for _, t := range token.Tokenize(s) {
			sum += freq[t]
		}
		ranked = append(ranked, scored{s, sum})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if maxSentences > len(ranked) {
		maxSentences = len(ranked)
	}
	parts := make([]string, maxSentences)
	for i := 0; i < maxSentences; i++ {
		parts[i] = ranked[i].sentence
	}
	return strings.Join(parts, " ")
}

// splitSentences cuts text after '.', '!' or '?' when followed by
// whitespace or end of input. A trailing fragment without terminal
// punctuation still counts as a sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current []rune

	runes := []rune(text)
	for i, r := range runes {
		current = append(current, r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(current)); s != "" {
			sentences = append(sentences, s)
		}
		current = current[:0]
	}
	if s := strings.TrimSpace(string(current)); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
