package console

import (
	"strings"
	"unicode"
)

// Sequences that would mean something in a real shell. The console
// deliberately refuses them instead of silently treating them as
// text; "||" is covered by the bare pipe check.
var disallowedSequences = []string{"|", "<", ">", ";", "&&", "`", "$("}

// checkSyntax rejects input containing real-shell operators before
// any tokenization happens.
func checkSyntax(line string) *CommandError {
	for _, seq := range disallowedSequences {
		if strings.Contains(line, seq) {
			return newError(UnsupportedShellSyntax,
				"shell syntax %q is not supported here", seq)
		}
	}
	return nil
}

// tokenize splits a line on whitespace, keeping a double-quoted run
// together as a single token with the quotes stripped. An unclosed
// quote extends to the end of the line.
func tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false
	started := false

	flush := func() {
		if started {
			tokens = append(tokens, current.String())
			current.Reset()
			started = false
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return tokens
}
