package console

import (
	"sort"
	"strings"
	"unicode"
)

// Complete suggests completions for a partial input line. While the
// cursor is still inside the command-name token the candidates are
// command names and aliases; after that they come from listing the
// directory the last argument points into. Suggestions are sorted
// lexicographically; directories carry a trailing "/".
func (i *Interpreter) Complete(line string) []string {
	if !strings.ContainsFunc(line, unicode.IsSpace) {
		return completeCommand(line)
	}

	last := line
	if idx := strings.LastIndexFunc(line, unicode.IsSpace); idx >= 0 {
		last = line[idx+1:]
	}
	return i.completePath(last)
}

func completeCommand(partial string) []string {
	var suggestions []string
	for _, word := range commandWords() {
		if strings.HasPrefix(word, partial) {
			suggestions = append(suggestions, word)
		}
	}
	return suggestions // commandWords is already sorted
}

// completePath splits the token on its final "/": the left side names
// the directory to list, the right side is the name prefix to filter
// by. An unresolvable directory yields no suggestions.
func (i *Interpreter) completePath(token string) []string {
	dirPath, prefix := ".", token
	if idx := strings.LastIndex(token, "/"); idx >= 0 {
		dirPath, prefix = token[:idx], token[idx+1:]
		if dirPath == "" {
			dirPath = "/"
		}
	}

	entries, err := i.fs.List(dirPath, i.cwd)
	if err != nil {
		return nil
	}

	var suggestions []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name, prefix) {
			continue
		}
		name := e.Name
		if e.IsDir() {
			name += "/"
		}
		suggestions = append(suggestions, name)
	}
	sort.Strings(suggestions)
	return suggestions
}
