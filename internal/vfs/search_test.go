package vfs

import (
	"strings"
	"testing"

	"github.com/casefolio/console/internal/content"
	"github.com/casefolio/console/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCaseInsensitive(t *testing.T) {
	fs := testFS(t)

	// description contains "About" with a capital A
	matches := fs.Search("about")
	require.NotEmpty(t, matches)

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = m.Path
	}
	assert.Contains(t, paths, "/projects/alpha-beta/overview.txt")
}

func TestSearchMatchesFilesOnly(t *testing.T) {
	fs := testFS(t)

	// "ledger" appears both in a directory name (gamma-ledger) and in
	// file content; only the files match
	matches := fs.Search("ledger")
	require.NotEmpty(t, matches)
	for _, m := range matches {
		node, ok := fs.ResolveNode(m.Path, "/")
		require.True(t, ok)
		assert.Equal(t, KindFile, node.Kind())
	}
}

func TestSearchPreOrder(t *testing.T) {
	records := []content.Record{
		{ID: "r1", Title: "First", Description: "needle one"},
		{ID: "r2", Title: "Second", Description: "needle two"},
	}
	fs := Build(records, logging.NewNop())

	matches := fs.Search("needle")
	require.Len(t, matches, 2)
	// insertion order: first record's subtree before the second's
	assert.True(t, strings.HasPrefix(matches[0].Path, "/projects/first/"))
	assert.True(t, strings.HasPrefix(matches[1].Path, "/projects/second/"))
}

func TestSearchNoResults(t *testing.T) {
	fs := testFS(t)
	assert.Empty(t, fs.Search("zzz-no-such-token"))
}

func TestSearchMultibyteContent(t *testing.T) {
	// lowering Ⱥ (2 bytes) yields ⱥ (3 bytes), so byte offsets into
	// the lowered copy do not transfer to the original content
	desc := strings.Repeat("Ⱥ", 60) + " NEEDLE " + strings.Repeat("b", 60)
	records := []content.Record{
		{ID: "r1", Title: "Fold", Description: desc},
	}
	fs := Build(records, logging.NewNop())

	matches := fs.Search("needle")
	require.NotEmpty(t, matches)
	// snippet is cut from the original content with its casing intact
	assert.Contains(t, matches[0].Snippet, "NEEDLE")
}

func TestExtractSnippetMultibyte(t *testing.T) {
	long := strings.Repeat("Ⱥ", 200) + "needle" + strings.Repeat("Ⱥ", 200)
	snippet := extractSnippet(long, 200, len("needle"))

	assert.Contains(t, snippet, "needle")
	assert.Len(t, []rune(snippet), 3+50+len("needle")+50+3)
}

func TestExtractSnippetBounds(t *testing.T) {
	short := "tiny needle here"
	idx := strings.Index(short, "needle")
	snippet := extractSnippet(short, idx, len("needle"))
	// window reaches both natural edges: no ellipses
	assert.Equal(t, short, snippet)
}

func TestExtractSnippetEllipses(t *testing.T) {
	long := strings.Repeat("a", 200) + "needle" + strings.Repeat("b", 200)
	idx := strings.Index(long, "needle")
	snippet := extractSnippet(long, idx, len("needle"))

	assert.True(t, strings.HasPrefix(snippet, "..."))
	assert.True(t, strings.HasSuffix(snippet, "..."))
	assert.Contains(t, snippet, "needle")
	// 50 runes each side plus the match and both markers
	assert.Len(t, snippet, 3+50+len("needle")+50+3)
}

func TestExtractSnippetLeadingEdge(t *testing.T) {
	long := "needle" + strings.Repeat("x", 200)
	snippet := extractSnippet(long, 0, len("needle"))

	assert.False(t, strings.HasPrefix(snippet, "..."))
	assert.True(t, strings.HasSuffix(snippet, "..."))
}
