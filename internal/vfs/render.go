package vfs

import "strings"

// Tree connector glyphs, matching the usual tree(1) output.
const (
	glyphBranch = "├── "
	glyphLast   = "└── "
	glyphPipe   = "│   "
	glyphBlank  = "    "
)

// Tree renders the subtree at path as connector-style text, bounded
// to depth levels below the starting node. Depth 0 renders only the
// starting node's own line; a depth beyond the tree's actual height
// is not an error, recursion simply stops early. Depth validation
// (positive integer) is the caller's job.
func (fs *FS) Tree(path string, depth int, cwd string) (string, error) {
	node, ok := fs.ResolveNode(path, cwd)
	if !ok {
		return "", ErrNotFound
	}

	var b strings.Builder
	b.WriteString(node.Name() + "\n")
	renderChildren(&b, node, "", depth)
	return b.String(), nil
}

// renderChildren writes the children of node with the ancestor
// indentation prefix, recursing while remaining > 0. Children render
// in listing order: directories first, then files, lexicographic
// within each group.
func renderChildren(b *strings.Builder, node Node, prefix string, remaining int) {
	if remaining <= 0 {
		return
	}
	dir, ok := node.(*Dir)
	if !ok {
		return
	}

	entries := listDir(dir)
	ordered := make([]Node, 0, len(entries))
	for _, e := range entries {
		ordered = append(ordered, dir.children[e.Name])
	}

	for i, child := range ordered {
		connector, childPrefix := glyphBranch, prefix+glyphPipe
		if i == len(ordered)-1 {
			connector, childPrefix = glyphLast, prefix+glyphBlank
		}
		b.WriteString(prefix + connector + child.Name() + "\n")
		renderChildren(b, child, childPrefix, remaining-1)
	}
}

// listDir is List without path resolution, for internal traversal.
func listDir(dir *Dir) []Entry {
	entries := make([]Entry, 0, len(dir.order))
	for _, name := range dir.order {
		child := dir.children[name]
		entries = append(entries, Entry{Name: name, Kind: child.Kind(), Path: child.Path()})
	}
	sortEntries(entries)
	return entries
}
