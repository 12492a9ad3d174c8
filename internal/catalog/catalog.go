package catalog

// Entry is one selectable video in the catalog. Path is the stable
// identifier used everywhere; DisplayName is only for rendering and may
// collide between entries.
type Entry struct {
	Path        string // relative slash-separated path, unique, non-empty
	DisplayName string
	PreviewURI  string // empty = no preview available
}

// Index is an immutable-after-construction mapping from path to Entry.
type Index struct {
	entries map[string]Entry
	paths   []string // encounter order
}

// New builds an Index from entries. Entries with an empty Path are dropped
// silently; on duplicate paths the first occurrence wins.
func New(entries []Entry) *Index {
	idx := &Index{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Path == "" {
			continue
		}
		if _, ok := idx.entries[e.Path]; ok {
			continue
		}
		if e.DisplayName == "" {
			e.DisplayName = e.Path
		}
		idx.entries[e.Path] = e
		idx.paths = append(idx.paths, e.Path)
	}
	return idx
}

// Lookup returns the entry for path.
func (i *Index) Lookup(path string) (Entry, bool) {
	e, ok := i.entries[path]
	return e, ok
}

// Paths returns all entry paths in encounter order. The returned slice is
// shared; callers must not modify it.
func (i *Index) Paths() []string {
	return i.paths
}

// Len returns the number of entries.
func (i *Index) Len() int {
	return len(i.paths)
}
