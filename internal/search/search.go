package search

import (
	"sort"

	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Entry          *model.Entry
	MatchedIndexes []int
	Score          int
}

// entryContents implements fuzzy.Source for an entry slice.
type entryContents []*model.Entry

func (ec entryContents) String(i int) string {
	return ec[i].Content
}

func (ec entryContents) Len() int {
	return len(ec)
}

// FuzzySearchEntries searches all entries by content using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchEntries(d *model.Dataset, query string) []SearchResult {
	if query == "" {
		return nil
	}

	entries := make(entryContents, len(d.Entries))
	for i := range d.Entries {
		entries[i] = &d.Entries[i]
	}

	matches := fuzzy.FindFrom(query, entries)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Entry:          entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// Filter returns the entries matching query in dataset order.
// An empty query matches everything.
func Filter(d *model.Dataset, query string) []model.Entry {
	if query == "" {
		return append([]model.Entry(nil), d.Entries...)
	}

	matches := fuzzy.FindFrom(query, contents(d.Entries))
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	sort.Ints(idx)

	out := make([]model.Entry, len(idx))
	for i, j := range idx {
		out[i] = d.Entries[j]
	}
	return out
}

type contents []model.Entry

func (c contents) String(i int) string { return c[i].Content }
func (c contents) Len() int            { return len(c) }
