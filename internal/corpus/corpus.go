// Package corpus defines the immutable article records and the ordered
// category collection the analytics engine runs against. A Corpus is one
// snapshot: any structural change means building a new Corpus (and a new
// analyzer on top of it), never mutating one in place.
package corpus

import (
	"strings"
	"time"
)

// DefaultImportance is used when an article carries no importance rating.
const DefaultImportance = 3

// Article is a single news record. Date is kept as the raw "YYYY-MM-DD"
// string and tolerated if malformed or missing.
type Article struct {
	ID          string
	Category    string
	Title       string
	Description string
	Link        string
	Importance  int
	Date        string
}

// Text returns the analyzable text of the article.
func (a Article) Text() string {
	return a.Title + " " + a.Description
}

// Rating returns the importance, defaulting when unset.
func (a Article) Rating() int {
	if a.Importance <= 0 {
		return DefaultImportance
	}
	return a.Importance
}

// Blank reports whether the article has no analyzable text.
func (a Article) Blank() bool {
	return strings.TrimSpace(a.Text()) == ""
}

// MonthKey parses a "YYYY-MM-DD" date into its "YYYY-MM" bucket.
// The second result is false for malformed or missing dates.
func MonthKey(date string) (string, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01"), true
}

// Corpus maps category names to ordered article lists. Category insertion
// order is the canonical category ordering.
type Corpus struct {
	order      []string
	byCategory map[string][]Article
}

func New() *Corpus {
	return &Corpus{byCategory: make(map[string][]Article)}
}

// Add appends articles to a category, registering the category on first use.
func (c *Corpus) Add(category string, articles ...Article) {
	if _, ok := c.byCategory[category]; !ok {
		c.order = append(c.order, category)
		c.byCategory[category] = nil
	}
	for _, a := range articles {
		a.Category = category
		c.byCategory[category] = append(c.byCategory[category], a)
	}
}

// Categories returns category names in insertion order.
func (c *Corpus) Categories() []string {
	return c.order
}

// Has reports whether the category exists in this snapshot.
func (c *Corpus) Has(category string) bool {
	_, ok := c.byCategory[category]
	return ok
}

// Articles returns the ordered articles of a category, nil if unknown.
func (c *Corpus) Articles(category string) []Article {
	return c.byCategory[category]
}

// All returns every article, walking categories in canonical order.
func (c *Corpus) All() []Article {
	var all []Article
	for _, cat := range c.order {
		all = append(all, c.byCategory[cat]...)
	}
	return all
}

// Len returns the total article count.
func (c *Corpus) Len() int {
	n := 0
	for _, arts := range c.byCategory {
		n += len(arts)
	}
	return n
}
