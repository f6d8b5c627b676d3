package index

import "sort"

// Counter tallies token occurrences while remembering first-seen order,
// so frequency rankings break ties deterministically.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add counts each token once per occurrence.
func (c *Counter) Add(tokens ...string) {
	for _, t := range tokens {
		if _, ok := c.counts[t]; !ok {
			c.order = append(c.order, t)
		}
		c.counts[t]++
	}
}

// Count returns the tally for a token, 0 if unseen.
func (c *Counter) Count(token string) int {
	return c.counts[token]
}

// Counts returns a copy of the tally map.
func (c *Counter) Counts() map[string]int {
	out := make(map[string]int, len(c.counts))
	for t, n := range c.counts {
		out[t] = n
	}
	return out
}

// Top returns up to n tokens ranked by count descending; equal counts keep
// first-seen order. n <= 0 yields an empty result.
func (c *Counter) Top(n int) []string {
	if n <= 0 {
		return nil
	}
	ranked := make([]string, len(c.order))
	copy(ranked, c.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.counts[ranked[i]] > c.counts[ranked[j]]
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
