package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/okneenlol123-ops/Lumina-News/internal/analyzer"
	"github.com/okneenlol123-ops/Lumina-News/internal/config"
	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
	"github.com/okneenlol123-ops/Lumina-News/internal/dataset"
	"github.com/okneenlol123-ops/Lumina-News/internal/store"
)

// env bundles everything a command needs: the config, the corpus snapshot
// and the analyzer built on top of it.
type env struct {
	cfg      *config.Config
	corpus   *corpus.Corpus
	analyzer *analyzer.Analyzer
	// demo is set when the store was empty and the embedded dataset
	// took its place; commands backed by the store honor it too.
	demo bool
}

func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	return config.StorePath()
}

func openStore() (*store.Store, error) {
	s, err := store.Open(dbPath())
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return s, nil
}

// loadEnv loads config and the stored corpus. An empty store falls back to
// the embedded demo corpus so the analytics commands always have data.
func loadEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	s, err := openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	c, err := s.LoadCorpus()
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	demo := false
	if c.Len() == 0 {
		log.Warn("article store is empty, using embedded demo corpus", "db", dbPath())
		c, err = dataset.Demo()
		if err != nil {
			return nil, err
		}
		demo = true
	}

	return &env{cfg: cfg, corpus: c, analyzer: analyzer.New(c, cfg.ImportantTerms...), demo: demo}, nil
}

// requireCategory validates a category argument against the corpus.
func (e *env) requireCategory(name string) error {
	if e.corpus.Has(name) {
		return nil
	}
	return fmt.Errorf("unknown category %q (valid: %s)", name,
		strings.Join(e.corpus.Categories(), ", "))
}

// searchCorpus matches a query against titles and descriptions,
// case-insensitively, preserving corpus order.
func searchCorpus(c *corpus.Corpus, query string) []corpus.Article {
	q := strings.ToLower(query)
	var matches []corpus.Article
	for _, a := range c.All() {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			matches = append(matches, a)
		}
	}
	return matches
}

// sortArticles orders a copy of articles by the given mode: important
// puts higher ratings first, newest sorts by date descending with
// unparseable dates last. Both keep stored order for ties.
func sortArticles(articles []corpus.Article, mode string) []corpus.Article {
	sorted := make([]corpus.Article, len(articles))
	copy(sorted, articles)

	if mode == config.SortImportant {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating() > sorted[j].Rating()
		})
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return parseDate(sorted[i].Date).After(parseDate(sorted[j].Date))
	})
	return sorted
}

func parseDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}

func joinTerms(terms []string, n int) string {
	if n < len(terms) {
		terms = terms[:n]
	}
	return strings.Join(terms, ", ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
