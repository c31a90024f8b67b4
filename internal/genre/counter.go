package genre

import (
	"sort"

	"github.com/actuallystonmai/genre-analysis-service/internal/domain"
)

// counter tallies string keys while remembering first-occurrence order, so
// equal counts rank in the order their keys first appeared in the input.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) total() int {
	n := 0
	for _, count := range c.counts {
		n += count
	}
	return n
}

// mostCommon returns entries ranked by count descending, ties broken by
// first occurrence. limit < 0 means all entries.
func (c *counter) mostCommon(limit int) []domain.GenreCount {
	entries := make([]domain.GenreCount, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, domain.GenreCount{Name: key, Count: c.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// sortedByName returns all entries sorted by key ascending, case-sensitive.
func (c *counter) sortedByName() []domain.GenreCount {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.Strings(keys)

	entries := make([]domain.GenreCount, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, domain.GenreCount{Name: key, Count: c.counts[key]})
	}
	return entries
}
