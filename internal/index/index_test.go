package index

import (
	"math"
	"reflect"
	"testing"

	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
)

func testCorpus() *corpus.Corpus {
	c := corpus.New()
	c.Add("X",
		corpus.Article{Title: "bahn bahn", Description: "pünktlichkeit verbessert"},
		corpus.Article{Title: "bahn streik", Description: "verkehr gestört"},
		corpus.Article{Title: "wetter sonnig", Description: "temperaturen steigen"},
	)
	return c
}

func TestBuildIDFMonotonicity(t *testing.T) {
	idx := Build(testCorpus())

	// "bahn" appears in 2 documents, "streik" in 1.
	if idx.IDF["bahn"] >= idx.IDF["streik"] {
		t.Errorf("expected rarer token to weigh more: bahn=%v streik=%v",
			idx.IDF["bahn"], idx.IDF["streik"])
	}
}

func TestBuildIDFValues(t *testing.T) {
	idx := Build(testCorpus())

	// N=3: df=1 -> ln(4/2)+1, df=2 -> ln(4/3)+1
	wantRare := math.Log(4.0/2.0) + 1
	wantCommon := math.Log(4.0/3.0) + 1
	if got := idx.IDF["streik"]; math.Abs(got-wantRare) > 1e-12 {
		t.Errorf("IDF(streik) = %v, want %v", got, wantRare)
	}
	if got := idx.IDF["bahn"]; math.Abs(got-wantCommon) > 1e-12 {
		t.Errorf("IDF(bahn) = %v, want %v", got, wantCommon)
	}
}

func TestBuildIDFStrictlyPositive(t *testing.T) {
	idx := Build(testCorpus())
	for tok, w := range idx.IDF {
		if w <= 0 {
			t.Errorf("IDF(%s) = %v, want > 0", tok, w)
		}
	}
}

func TestBuildCountsDistinctPerDocument(t *testing.T) {
	idx := Build(testCorpus())

	// "bahn" occurs three times overall but in only two documents, so its
	// IDF must match df=2, not df=3.
	want := math.Log(4.0/3.0) + 1
	if got := idx.IDF["bahn"]; math.Abs(got-want) > 1e-12 {
		t.Errorf("IDF(bahn) = %v, want %v (df=2)", got, want)
	}
}

func TestBuildTopTokensByFrequency(t *testing.T) {
	idx := Build(testCorpus())
	if len(idx.TopTokens) == 0 || idx.TopTokens[0] != "bahn" {
		t.Errorf("expected 'bahn' (3 occurrences) first, got %v", idx.TopTokens)
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	idx := Build(corpus.New())
	if len(idx.IDF) != 0 {
		t.Errorf("expected empty IDF map, got %v", idx.IDF)
	}
	if len(idx.TopTokens) != 0 {
		t.Errorf("expected no top tokens, got %v", idx.TopTokens)
	}
}

func TestCounterTopTieBreak(t *testing.T) {
	c := NewCounter()
	c.Add("zweiter", "erster", "erster", "zweiter", "dritter")

	got := c.Top(3)
	want := []string{"zweiter", "erster", "dritter"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top = %v, want %v (ties keep first-seen order)", got, want)
	}
}

func TestCounterTopLimit(t *testing.T) {
	c := NewCounter()
	c.Add("eins", "zwei", "drei")
	if got := c.Top(2); len(got) != 2 {
		t.Errorf("Top(2) returned %d tokens", len(got))
	}
	if got := c.Top(0); got != nil {
		t.Errorf("Top(0) = %v, want nil", got)
	}
	if got := c.Top(10); len(got) != 3 {
		t.Errorf("Top(10) returned %d tokens, want 3", len(got))
	}
}

func TestCounterCounts(t *testing.T) {
	c := NewCounter()
	c.Add("bahn", "bahn", "streik")
	counts := c.Counts()
	if counts["bahn"] != 2 || counts["streik"] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
	counts["bahn"] = 99
	if c.Count("bahn") != 2 {
		t.Error("Counts must return a copy")
	}
}
