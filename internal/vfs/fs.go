package vfs

import (
	"errors"
	"sort"
)

// Query failures. Absence is an ordinary outcome, not an exceptional
// one; callers decide whether it is an error for them.
var (
	ErrNotFound      = errors.New("no such file or directory")
	ErrNotADirectory = errors.New("not a directory")
	ErrNotAFile      = errors.New("not a file")
)

// FS owns the immutable node tree and exposes the read-only queries
// built on top of it. All other components hold borrowed access
// through these methods, never references into the structure.
type FS struct {
	root     *Dir
	idByPath map[string]string // project root path -> record ID
	pathByID map[string]string // record ID -> project root path
}

// Entry is one row of a directory listing.
type Entry struct {
	Name string   `json:"name"`
	Kind NodeKind `json:"-"`
	Path string   `json:"path"`
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool { return e.Kind == KindDirectory }

// Root returns the root directory node.
func (fs *FS) Root() *Dir { return fs.root }

// ResolveNode resolves path against cwd and walks the tree to the
// addressed node. A missing child, or a path that tries to descend
// through a file, yields (nil, false).
func (fs *FS) ResolveNode(path, cwd string) (Node, bool) {
	abs := ResolveAbsolute(path, cwd)
	var current Node = fs.root
	for _, seg := range SplitPath(abs) {
		dir, ok := current.(*Dir)
		if !ok {
			return nil, false
		}
		child, ok := dir.Child(seg)
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// List enumerates the children of the directory at path, directories
// before files and each group in case-sensitive lexicographic order.
// An empty directory yields an empty slice.
func (fs *FS) List(path, cwd string) ([]Entry, error) {
	node, ok := fs.ResolveNode(path, cwd)
	if !ok {
		return nil, ErrNotFound
	}
	dir, ok := node.(*Dir)
	if !ok {
		return nil, ErrNotADirectory
	}

	return listDir(dir), nil
}

// sortEntries orders a listing: directories before files, then
// case-sensitive lexicographic by name within each group.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name < entries[j].Name
	})
}

// Read returns the content of the file at path.
func (fs *FS) Read(path, cwd string) (string, error) {
	node, ok := fs.ResolveNode(path, cwd)
	if !ok {
		return "", ErrNotFound
	}
	file, ok := node.(*File)
	if !ok {
		return "", ErrNotAFile
	}
	return file.Content(), nil
}

// ProjectIDForPath maps a path inside a project subtree to the
// originating record ID by walking ancestor paths upward. Returns
// ("", false) for paths outside any project.
func (fs *FS) ProjectIDForPath(path, cwd string) (string, bool) {
	abs := ResolveAbsolute(path, cwd)
	for {
		if id, ok := fs.idByPath[abs]; ok {
			return id, true
		}
		if abs == "/" {
			return "", false
		}
		abs = parentPath(abs)
	}
}

// PathForProjectID maps a record ID back to its project root path.
func (fs *FS) PathForProjectID(id string) (string, bool) {
	path, ok := fs.pathByID[id]
	return path, ok
}
