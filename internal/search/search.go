package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/AntiHeld889/beamerctl/internal/catalog"
)

// Match is one search hit against the catalog.
type Match struct {
	Entry catalog.Entry
	Start int // byte offset of the substring match within Entry.Path
	End   int
}

// Filter returns the catalog entries whose path contains query,
// case-insensitive, in catalog encounter order. An empty or
// whitespace-only query returns nil: the caller renders "not searching",
// which is distinct from a non-empty query with zero matches.
func Filter(index *catalog.Index, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	needle := strings.ToLower(query)
	var matches []Match
	for _, path := range index.Paths() {
		i := strings.Index(strings.ToLower(path), needle)
		if i < 0 {
			continue
		}
		entry, _ := index.Lookup(path)
		matches = append(matches, Match{
			Entry: entry,
			Start: i,
			End:   i + len(needle),
		})
	}
	return matches
}

// pathSource implements fuzzy.Source over catalog paths.
type pathSource []string

func (p pathSource) String(i int) string { return p[i] }
func (p pathSource) Len() int            { return len(p) }

// FuzzyPaths ranks catalog paths against query using fuzzy matching, best
// first. An empty query returns all paths in encounter order. Used by the
// loop-video picker.
func FuzzyPaths(index *catalog.Index, query string) []string {
	paths := index.Paths()
	if query == "" {
		return paths
	}

	ranked := fuzzy.FindFrom(query, pathSource(paths))
	out := make([]string, len(ranked))
	for i, m := range ranked {
		out[i] = paths[m.Index]
	}
	return out
}
