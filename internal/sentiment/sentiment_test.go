package sentiment

import "testing"

func TestScorePositiveText(t *testing.T) {
	score := Score("gut stark erfolgreich")
	if score != 1.0 {
		t.Errorf("expected 1.0 for all-positive text, got %v", score)
	}
}

func TestScoreNegativeText(t *testing.T) {
	score := Score("krise verlust problem")
	if score != -1.0 {
		t.Errorf("expected -1.0 for all-negative text, got %v", score)
	}
}

func TestScoreMixedText(t *testing.T) {
	// two positive hits, one negative hit -> (2-1)/3
	score := Score("gut stark krise")
	want := 1.0 / 3.0
	if score != want {
		t.Errorf("expected %v, got %v", want, score)
	}
}

func TestScoreEmptyAndNeutralText(t *testing.T) {
	if got := Score(""); got != 0.0 {
		t.Errorf("Score(\"\") = %v, want 0.0", got)
	}
	if got := Score("Industrieproduktion zeigt moderate Zuwächse"); got != 0.0 {
		t.Errorf("expected 0.0 for lexicon-free text, got %v", got)
	}
}

func TestScoreSubstringMatching(t *testing.T) {
	// "förderprogramm" contains the stem "förder", "lieferkettenrisiken"
	// contains "risiken"; neither is an exact lexicon entry.
	if got := Score("Förderprogramm gestartet"); got <= 0 {
		t.Errorf("expected positive score via stem containment, got %v", got)
	}
	if got := Score("Lieferkettenrisiken steigen"); got >= 0 {
		t.Errorf("expected negative score via stem containment, got %v", got)
	}
}

func TestScoreBounds(t *testing.T) {
	texts := []string{
		"", "gut", "krise", "gut krise", "stark verlust problem gewinn",
		"Die Industrieproduktion verzeichnet moderate Zuwächse im Maschinenbau",
	}
	for _, text := range texts {
		score := Score(text)
		if score < -1.0 || score > 1.0 {
			t.Errorf("Score(%q) = %v out of [-1, 1]", text, score)
		}
	}
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		score float64
		want  Label
	}{
		{1.0, Positive},
		{0.21, Positive},
		{0.2, Neutral},
		{0.0, Neutral},
		{-0.2, Neutral},
		{-0.21, Negative},
		{-1.0, Negative},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
