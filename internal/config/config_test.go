package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.SortMode != SortNewest {
		t.Errorf("default sort_mode = %q, want %q", cfg.SortMode, SortNewest)
	}
	if cfg.GetTopKeywords() <= 0 || cfg.GetHeadlines() <= 0 {
		t.Error("expected positive default list sizes")
	}
}

func TestGettersFallBackToDefaults(t *testing.T) {
	cfg := &Config{}
	if cfg.GetSortMode() != SortNewest {
		t.Errorf("GetSortMode = %q, want %q", cfg.GetSortMode(), SortNewest)
	}
	if cfg.GetTopKeywords() != 20 {
		t.Errorf("GetTopKeywords = %d, want 20", cfg.GetTopKeywords())
	}
	if cfg.GetTopTerms() != 10 {
		t.Errorf("GetTopTerms = %d, want 10", cfg.GetTopTerms())
	}
	if cfg.GetHeadlines() != 10 {
		t.Errorf("GetHeadlines = %d, want 10", cfg.GetHeadlines())
	}
	if cfg.GetSummarySentences() != 2 {
		t.Errorf("GetSummarySentences = %d, want 2", cfg.GetSummarySentences())
	}
}

func TestGettersUseConfiguredValues(t *testing.T) {
	cfg := &Config{SortMode: SortImportant, TopKeywords: 30, SummarySentences: 7}
	if cfg.GetSortMode() != SortImportant {
		t.Errorf("GetSortMode = %q, want %q", cfg.GetSortMode(), SortImportant)
	}
	if cfg.GetTopKeywords() != 30 {
		t.Errorf("GetTopKeywords = %d, want 30", cfg.GetTopKeywords())
	}
	if cfg.GetSummarySentences() != 7 {
		t.Errorf("GetSummarySentences = %d, want 7", cfg.GetSummarySentences())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "sort_mode: important\ntop_keywords: 5\nimportant_terms:\n  - förderung\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SortMode != SortImportant || cfg.TopKeywords != 5 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.ImportantTerms) != 1 || cfg.ImportantTerms[0] != "förderung" {
		t.Errorf("ImportantTerms = %v", cfg.ImportantTerms)
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetSortMode() != SortNewest {
		t.Errorf("expected default config, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected defaults written to %s: %v", path, err)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad_sort.yaml")
	os.WriteFile(bad, []byte("sort_mode: alphabetical\n"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("expected error for unknown sort_mode")
	}

	badTerm := filepath.Join(dir, "bad_term.yaml")
	os.WriteFile(badTerm, []byte("important_terms:\n  - \"\"\n"), 0o644)
	if _, err := Load(badTerm); err == nil {
		t.Error("expected error for empty important term")
	}

	notYaml := filepath.Join(dir, "not.yaml")
	os.WriteFile(notYaml, []byte("sort_mode: [broken\n"), 0o644)
	if _, err := Load(notYaml); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
