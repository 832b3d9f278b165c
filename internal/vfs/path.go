package vfs

import "strings"

// ResolveAbsolute normalizes path against the working directory cwd
// and returns a canonical absolute path. A leading "/" makes path
// absolute; otherwise resolution starts from cwd's segments. "."
// segments are dropped, ".." pops the previous segment and is a no-op
// at the root, so the result can never climb above "/". Empty
// segments from doubled or trailing slashes are collapsed.
//
// Pure and total: any input yields a canonical path, never an error.
func ResolveAbsolute(path, cwd string) string {
	var segments []string
	if !strings.HasPrefix(path, "/") {
		segments = SplitPath(cwd)
	}
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
			// no-op
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, seg)
		}
	}
	return JoinPath(segments)
}

// SplitPath splits a canonical absolute path into its segments.
// The root "/" yields an empty slice.
func SplitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" && seg != "." {
			segments = append(segments, seg)
		}
	}
	return segments
}

// JoinPath reassembles segments into a canonical absolute path.
// Zero segments yield the bare root "/".
func JoinPath(segments []string) string {
	return "/" + strings.Join(segments, "/")
}

// parentPath returns the canonical parent of a canonical absolute
// path; the root is its own parent.
func parentPath(path string) string {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return "/"
	}
	return JoinPath(segments[:len(segments)-1])
}

// joinChild appends a child name to a canonical directory path.
func joinChild(dirPath, name string) string {
	if dirPath == "/" {
		return "/" + name
	}
	return dirPath + "/" + name
}
