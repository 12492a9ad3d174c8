package tui

import "github.com/AntiHeld889/beamerctl/internal/catalog"

// Row is one visible line of the source tree pane.
type Row struct {
	Node  *catalog.Node
	Depth int
}

// flattenTree returns the visible rows of the tree given the current
// expand state. Collapsed directories contribute a single row.
func flattenTree(nodes []*catalog.Node, expanded map[string]bool) []Row {
	var rows []Row
	var walk func(nodes []*catalog.Node, depth int)
	walk = func(nodes []*catalog.Node, depth int) {
		for _, n := range nodes {
			rows = append(rows, Row{Node: n, Depth: depth})
			if !n.IsFile && expanded[n.Path] {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(nodes, 0)
	return rows
}

// rowIndex returns the row index of the entry with the given path, or -1.
func rowIndex(rows []Row, path string) int {
	for i, r := range rows {
		if r.Node.Path == path && r.Node.IsFile {
			return i
		}
	}
	return -1
}
