package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Sort modes for article listings.
const (
	SortNewest    = "newest"
	SortImportant = "important"
)

type Config struct {
	SortMode         string   `yaml:"sort_mode"`
	TopKeywords      int      `yaml:"top_keywords,omitempty"`
	TopTerms         int      `yaml:"top_terms,omitempty"`
	Headlines        int      `yaml:"headlines,omitempty"`
	SummarySentences int      `yaml:"summary_sentences,omitempty"`
	ImportantTerms   []string `yaml:"important_terms,omitempty"`
}

// GetSortMode returns the listing sort mode, defaulting to newest-first.
func (c *Config) GetSortMode() string {
	if c.SortMode == SortImportant {
		return SortImportant
	}
	return SortNewest
}

// GetTopKeywords returns the global keyword list size, defaulting to 20.
func (c *Config) GetTopKeywords() int {
	if c.TopKeywords <= 0 {
		return 20
	}
	return c.TopKeywords
}

// GetTopTerms returns the per-category term list size, defaulting to 10.
func (c *Config) GetTopTerms() int {
	if c.TopTerms <= 0 {
		return 10
	}
	return c.TopTerms
}

// GetHeadlines returns the headline list size, defaulting to 10.
func (c *Config) GetHeadlines() int {
	if c.Headlines <= 0 {
		return 10
	}
	return c.Headlines
}

// GetSummarySentences returns the summary length, defaulting to 2.
func (c *Config) GetSummarySentences() int {
	if c.SummarySentences <= 0 {
		return 2
	}
	return c.SummarySentences
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "lumina", "config.yaml")
}

func StorePath() string {
	return filepath.Join(xdg.DataHome, "lumina", "articles.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	switch cfg.SortMode {
	case "", SortNewest, SortImportant:
	default:
		return fmt.Errorf("unknown sort_mode %q (valid: %s, %s)", cfg.SortMode, SortNewest, SortImportant)
	}
	for i, term := range cfg.ImportantTerms {
		if term == "" {
			return fmt.Errorf("important_terms[%d]: term must not be empty", i)
		}
	}
	return nil
}
