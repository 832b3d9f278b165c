package vfs

import (
	"strings"
	"unicode/utf8"
)

// snippetRadius is the number of runes of context kept on each side
// of the first match when extracting a snippet.
const snippetRadius = 50

// Match is one search hit: the file's path and a snippet around the
// first occurrence of the keyword.
type Match struct {
	Path    string `json:"path"`
	Snippet string `json:"snippet"`
}

// Search scans file content for a case-insensitive substring match.
// Directories are never matched. Results come back in deterministic
// pre-order with children in insertion order; there is no relevance
// ranking.
// Blank keywords are the caller's problem; Search treats whatever it
// receives literally.
func (fs *FS) Search(keyword string) []Match {
	needle := strings.ToLower(keyword)
	var matches []Match
	searchNode(fs.root, needle, &matches)
	return matches
}

func searchNode(node Node, needle string, matches *[]Match) {
	switch n := node.(type) {
	case *File:
		lowered := strings.ToLower(n.Content())
		if idx := strings.Index(lowered, needle); idx >= 0 {
			// ToLower maps rune for rune, so rune offsets in the
			// lowered copy line up with the original content even
			// where byte offsets do not.
			runeIdx := utf8.RuneCountInString(lowered[:idx])
			runeLen := utf8.RuneCountInString(lowered[idx : idx+len(needle)])
			*matches = append(*matches, Match{
				Path:    n.Path(),
				Snippet: extractSnippet(n.Content(), runeIdx, runeLen),
			})
		}
	case *Dir:
		for _, name := range n.order {
			searchNode(n.children[name], needle, matches)
		}
	}
}

// extractSnippet cuts a fixed-radius window around the match, which
// spans runeLen runes starting at rune offset runeIdx, clipped to the
// content bounds. Ellipsis markers are added only on sides where the
// window cut into the content rather than reaching its natural edge.
func extractSnippet(contentText string, runeIdx, runeLen int) string {
	runes := []rune(contentText)

	start := runeIdx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := runeIdx + runeLen + snippetRadius
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet += "..."
	}
	return snippet
}
