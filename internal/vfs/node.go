// Package vfs implements the read-only, in-memory virtual filesystem
// the console exposes: path resolution, one-shot tree construction
// from project records, listing, reading, tree rendering, and content
// search. The tree is immutable once built and safe for concurrent
// reads; the FS value is its single owner.
package vfs

// NodeKind distinguishes the two node variants.
type NodeKind int

const (
	KindDirectory NodeKind = iota
	KindFile
)

// String returns the listing label for the kind.
func (k NodeKind) String() string {
	if k == KindDirectory {
		return "dir"
	}
	return "file"
}

// Node is the sealed union of Dir and File. Nothing outside this
// package can implement it, so a type switch over the two variants is
// exhaustive.
type Node interface {
	Name() string
	Path() string
	Kind() NodeKind

	sealed()
}

// Dir is a directory node. Children are keyed by name; order records
// insertion order for deterministic traversal.
type Dir struct {
	name      string
	path      string
	projectID string // set only on project root directories
	children  map[string]Node
	order     []string
}

func newDir(name, path string) *Dir {
	return &Dir{
		name:     name,
		path:     path,
		children: make(map[string]Node),
	}
}

// Name returns the directory's own name; "/" for the root.
func (d *Dir) Name() string { return d.name }

// Path returns the canonical absolute path.
func (d *Dir) Path() string { return d.path }

// Kind returns KindDirectory.
func (d *Dir) Kind() NodeKind { return KindDirectory }

func (d *Dir) sealed() {}

// ProjectID returns the originating record ID for project root
// directories, or "" elsewhere.
func (d *Dir) ProjectID() string { return d.projectID }

// Child looks up a direct child by name.
func (d *Dir) Child(name string) (Node, bool) {
	child, ok := d.children[name]
	return child, ok
}

// addChild inserts a child, replacing any previous entry with the
// same name. Replacement keeps the original insertion position.
func (d *Dir) addChild(child Node) {
	name := child.Name()
	if _, exists := d.children[name]; !exists {
		d.order = append(d.order, name)
	}
	d.children[name] = child
}

// hasChild reports whether a direct child with the name exists.
func (d *Dir) hasChild(name string) bool {
	_, ok := d.children[name]
	return ok
}

// File is a file node carrying textual content. ExternalURL, when
// set, is a link the caller should open instead of rendering the
// content inline.
type File struct {
	name        string
	path        string
	content     string
	externalURL string
}

func newFile(name, path, content string) *File {
	return &File{name: name, path: path, content: content}
}

// Name returns the file name.
func (f *File) Name() string { return f.name }

// Path returns the canonical absolute path.
func (f *File) Path() string { return f.path }

// Kind returns KindFile.
func (f *File) Kind() NodeKind { return KindFile }

func (f *File) sealed() {}

// Content returns the file body; empty string if none.
func (f *File) Content() string { return f.content }

// ExternalURL returns the external link, or "" for inline files.
func (f *File) ExternalURL() string { return f.externalURL }
