package cmd

import (
	"testing"

	"github.com/okneenlol123-ops/Lumina-News/internal/config"
	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
)

func TestSortArticlesNewest(t *testing.T) {
	articles := []corpus.Article{
		{Title: "old", Date: "2024-01-10"},
		{Title: "new", Date: "2024-03-05"},
		{Title: "undated"},
		{Title: "mid", Date: "2024-02-01"},
	}

	sorted := sortArticles(articles, config.SortNewest)
	want := []string{"new", "mid", "old", "undated"}
	for i, title := range want {
		if sorted[i].Title != title {
			t.Errorf("position %d = %q, want %q", i, sorted[i].Title, title)
		}
	}
	if articles[0].Title != "old" {
		t.Error("sortArticles must not mutate its input")
	}
}

func TestSortArticlesImportant(t *testing.T) {
	articles := []corpus.Article{
		{Title: "a", Importance: 2},
		{Title: "b", Importance: 5},
		{Title: "c"}, // defaults to 3
		{Title: "d", Importance: 5},
	}

	sorted := sortArticles(articles, config.SortImportant)
	want := []string{"b", "d", "c", "a"}
	for i, title := range want {
		if sorted[i].Title != title {
			t.Errorf("position %d = %q, want %q", i, sorted[i].Title, title)
		}
	}
}

func TestSearchCorpus(t *testing.T) {
	c := corpus.New()
	c.Add("Wirtschaft",
		corpus.Article{Title: "Bahn meldet Verspätungen", Description: "Signalstörung im Norden."},
		corpus.Article{Title: "Börse schließt fester", Description: "Die Bahn-Aktie legt zu."},
	)
	c.Add("Sport", corpus.Article{Title: "Derby endet unentschieden"})

	// Case-insensitive, matches titles and descriptions, keeps order.
	got := searchCorpus(c, "bahn")
	if len(got) != 2 || got[0].Title != "Bahn meldet Verspätungen" || got[1].Title != "Börse schließt fester" {
		t.Errorf("searchCorpus(bahn) = %v", got)
	}
	if got := searchCorpus(c, "derby"); len(got) != 1 {
		t.Errorf("searchCorpus(derby) = %v", got)
	}
	if got := searchCorpus(c, "fehlt"); got != nil {
		t.Errorf("searchCorpus(fehlt) = %v, want nil", got)
	}
}

func TestJoinTerms(t *testing.T) {
	terms := []string{"alpha", "beta", "gamma"}
	if got := joinTerms(terms, 2); got != "alpha, beta" {
		t.Errorf("joinTerms(2) = %q", got)
	}
	if got := joinTerms(terms, 10); got != "alpha, beta, gamma" {
		t.Errorf("joinTerms(10) = %q", got)
	}
	if got := joinTerms(nil, 3); got != "" {
		t.Errorf("joinTerms(nil) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("kurz", 10); got != "kurz" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("ein langer Satz", 10); got != "ein lan..." {
		t.Errorf("truncate long = %q", got)
	}
	// Umlauts count as one rune each.
	if got := truncate("äöü", 3); got != "äöü" {
		t.Errorf("truncate runes = %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tc := range cases {
		if got := formatBytes(tc.in); got != tc.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
