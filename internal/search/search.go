package search

import (
	"github.com/nikbrunner/cbm/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Bookmark       model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkNames implements fuzzy.Source for bookmark slice.
type bookmarkNames []model.Bookmark

func (bn bookmarkNames) String(i int) string {
	return bn[i].Name
}

func (bn bookmarkNames) Len() int {
	return len(bn)
}

// FuzzySearchBookmarks searches all bookmarks by name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchBookmarks(catalog *model.Catalog, query string) []SearchResult {
	if query == "" || catalog == nil {
		return nil
	}

	bookmarks := bookmarkNames(catalog.Bookmarks)
	matches := fuzzy.FindFrom(query, bookmarks)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// ExactMatch returns the result whose bookmark name equals query, if any.
func ExactMatch(results []SearchResult, query string) (SearchResult, bool) {
	for _, r := range results {
		if r.Bookmark.Name == query {
			return r, true
		}
	}
	return SearchResult{}, false
}
