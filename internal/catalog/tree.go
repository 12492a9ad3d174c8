package catalog

import (
	"sort"
	"strings"
)

// Node is one row of the source tree: either a directory with children or
// a video file leaf referencing a catalog entry by path.
type Node struct {
	Name     string // display segment
	Path     string // full relative path (dir or file)
	IsFile   bool
	Children []*Node
}

// Tree builds the nested directory/file tree for the given entries.
// Directories sort before files; both are name-sorted within a level.
func Tree(entries []Entry) []*Node {
	root := &Node{}
	byPath := map[string]*Node{"": root}

	for _, e := range entries {
		if e.Path == "" {
			continue
		}
		segments := strings.Split(e.Path, "/")
		prefix := ""
		parent := root
		for _, seg := range segments[:len(segments)-1] {
			if prefix == "" {
				prefix = seg
			} else {
				prefix = prefix + "/" + seg
			}
			dir, ok := byPath[prefix]
			if !ok {
				dir = &Node{Name: seg, Path: prefix}
				byPath[prefix] = dir
				parent.Children = append(parent.Children, dir)
			}
			parent = dir
		}
		parent.Children = append(parent.Children, &Node{
			Name:   segments[len(segments)-1],
			Path:   e.Path,
			IsFile: true,
		})
	}

	sortNodes(root.Children)
	return root.Children
}

// sortNodes orders directories before files, then by name.
func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsFile != nodes[j].IsFile {
			return !nodes[i].IsFile
		}
		return nodes[i].Name < nodes[j].Name
	})
	for _, n := range nodes {
		if !n.IsFile {
			sortNodes(n.Children)
		}
	}
}

// Ancestors returns every ancestor directory path of a video path, from
// outermost to innermost. A top-level file has none.
func Ancestors(path string) []string {
	var dirs []string
	for i, r := range path {
		if r == '/' {
			dirs = append(dirs, path[:i])
		}
	}
	return dirs
}
