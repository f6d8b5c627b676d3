// Package dataset holds the embedded offline demo corpus and the JSON
// article format used by import and export. Articles are stored as a flat
// ordered list; the first appearance of each category fixes the canonical
// category order.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
)

//go:embed articles.json
var demoFS embed.FS

type record struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Importance  int    `json:"importance,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Demo returns the embedded demo corpus.
func Demo() (*corpus.Corpus, error) {
	data, err := demoFS.ReadFile("articles.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded dataset: %w", err)
	}
	articles, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded dataset: %w", err)
	}
	c := corpus.New()
	for _, a := range articles {
		c.Add(a.Category, a)
	}
	return c, nil
}

// Parse decodes a JSON article list. Records without a title are rejected;
// a missing importance stays zero and is defaulted downstream.
func Parse(data []byte) ([]corpus.Article, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding articles: %w", err)
	}
	articles := make([]corpus.Article, 0, len(records))
	for i, r := range records {
		if r.Title == "" {
			return nil, fmt.Errorf("article %d: title is required", i)
		}
		if r.Category == "" {
			return nil, fmt.Errorf("article %q: category is required", r.Title)
		}
		articles = append(articles, corpus.Article{
			Category:    r.Category,
			Title:       r.Title,
			Description: r.Description,
			Link:        r.Link,
			Importance:  r.Importance,
			Date:        r.Date,
		})
	}
	return articles, nil
}

// Load reads an article list from a JSON file.
func Load(path string) ([]corpus.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	articles, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return articles, nil
}

// Marshal encodes articles into the import/export JSON format.
func Marshal(articles []corpus.Article) ([]byte, error) {
	records := make([]record, len(articles))
	for i, a := range articles {
		records[i] = record{
			Category:    a.Category,
			Title:       a.Title,
			Description: a.Description,
			Link:        a.Link,
			Importance:  a.Importance,
			Date:        a.Date,
		}
	}
	return json.MarshalIndent(records, "", "  ")
}
