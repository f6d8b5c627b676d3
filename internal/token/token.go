package token

import "unicode"

// stopwords are German function words excluded from all downstream
// statistics. Words of two runes or fewer are dropped by length anyway;
// they stay in the set to keep it aligned with the lexicon sources.
var stopwords = map[string]bool{
	"und": true, "oder": true, "aber": true, "auch": true, "als": true,
	"an": true, "auf": true, "bei": true, "der": true, "die": true,
	"das": true, "ein": true, "eine": true, "in": true, "im": true,
	"ist": true, "sind": true, "mit": true, "zu": true, "von": true,
	"den": true, "des": true, "für": true, "dass": true, "dem": true,
	"nicht": true, "vor": true, "nach": true, "wie": true, "er": true,
	"sie": true, "es": true, "wir": true, "ihr": true, "ich": true,
	"hat": true, "haben": true, "werden": true, "wird": true, "seit": true,
	"mehr": true, "dies": true, "diese": true, "sehr": true, "nur": true,
	"noch": true, "so": true, "um": true, "gegen": true,
}

// IsStopword reports whether a lowercase token is in the fixed stopword set.
func IsStopword(word string) bool {
	return stopwords[word]
}

// Tokenize splits text into lowercase word tokens. A token is a maximal run
// of Unicode letters or digits; runs of two runes or fewer and stopwords are
// discarded. The result preserves input order and is never nil-unsafe to
// range over — empty input yields an empty slice.
func Tokenize(text string) []string {
	var tokens []string
	var run []rune

	flush := func() {
		if len(run) <= 2 {
			run = run[:0]
			return
		}
		word := string(run)
		run = run[:0]
		if stopwords[word] {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			run = append(run, unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()
	return tokens
}
