package vfs

import (
	"testing"

	"github.com/casefolio/console/internal/content"
	"github.com/casefolio/console/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []content.Record {
	return []content.Record{
		{
			ID:          "rec-alpha",
			Title:       "Alpha Beta — v2",
			Role:        "Lead Engineer",
			Description: "A system About resilient ingestion.",
			Problem:     "Throughput collapsed under load.",
			Diagram:     "https://example.com/alpha.svg",
			Highlights:  []string{"Backpressure-aware pipeline"},
			Decisions:   []string{"Keep the write path append-only"},
			Metrics:     []string{"p99 latency 40ms"},
			Links:       []content.Link{{Label: "Write-up", URL: "https://example.com/alpha"}},
			Attachments: []content.Attachment{
				{URL: "https://cdn.example.com/a.png", Caption: "Shot"},
				{URL: "https://cdn.example.com/b.png", Caption: "Shot"},
				{URL: "https://cdn.example.com/spec.pdf", Caption: "Design Spec"},
				{URL: "https://cdn.example.com/c.png"},
			},
		},
		{
			ID:          "rec-gamma",
			Title:       "Gamma Ledger",
			Role:        "Staff Engineer",
			Description: "Double-entry settlement ledger.",
		},
	}
}

func testFS(t *testing.T) *FS {
	t.Helper()
	return Build(testRecords(), logging.NewNop())
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Alpha Beta — v2", "alpha-beta"},
		{"Gamma Ledger", "gamma-ledger"},
		{"  Spaced   Out  ", "spaced-out"},
		{"C++ & Rust!", "c-rust"},
		{"--edge--", "edge"},
		{"MiXeD CaSe 42", "mixed-case-42"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestBuildRootBranches(t *testing.T) {
	fs := testFS(t)

	entries, err := fs.List("/", "/")
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"base", "meta", "projects"}, names)
	for _, e := range entries {
		assert.True(t, e.IsDir())
	}
}

func TestBuildProjectSubtree(t *testing.T) {
	fs := testFS(t)

	node, ok := fs.ResolveNode("/projects/alpha-beta", "/")
	require.True(t, ok)
	dir, ok := node.(*Dir)
	require.True(t, ok)
	assert.Equal(t, "rec-alpha", dir.ProjectID())

	entries, err := fs.List("/projects/alpha-beta", "/")
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	// attachments dir sorts before the files
	assert.Equal(t, []string{"attachments", "architecture.txt", "decisions.log", "impact.txt", "overview.txt"}, names)
}

func TestBuildTemplates(t *testing.T) {
	fs := testFS(t)

	overview, err := fs.Read("/projects/alpha-beta/overview.txt", "/")
	require.NoError(t, err)
	assert.Contains(t, overview, "Alpha Beta — v2")
	assert.Contains(t, overview, "Role: Lead Engineer")
	assert.Contains(t, overview, "Throughput collapsed under load.")
	assert.Contains(t, overview, "Write-up: https://example.com/alpha")

	arch, err := fs.Read("/projects/alpha-beta/architecture.txt", "/")
	require.NoError(t, err)
	assert.Contains(t, arch, "Diagram: https://example.com/alpha.svg")
	assert.Contains(t, arch, "* Backpressure-aware pipeline")

	decisions, err := fs.Read("/projects/alpha-beta/decisions.log", "/")
	require.NoError(t, err)
	assert.Contains(t, decisions, "001  Keep the write path append-only")

	impact, err := fs.Read("/projects/gamma-ledger/impact.txt", "/")
	require.NoError(t, err)
	assert.Contains(t, impact, "No impact metrics recorded.")
}

func TestAttachmentNaming(t *testing.T) {
	fs := testFS(t)

	entries, err := fs.List("/projects/alpha-beta/attachments", "/")
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	// duplicate captions get numeric suffixes before the extension;
	// captionless attachments fall back to their ordinal
	assert.ElementsMatch(t, []string{"shot.jpg", "shot-1.jpg", "design-spec.pdf", "attachment-4.jpg"}, names)
}

func TestAttachmentExternalURL(t *testing.T) {
	fs := testFS(t)

	node, ok := fs.ResolveNode("/projects/alpha-beta/attachments/shot.jpg", "/")
	require.True(t, ok)
	file, ok := node.(*File)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/a.png", file.ExternalURL())
}

func TestAttachmentExt(t *testing.T) {
	assert.Equal(t, "pdf", attachmentExt("https://x.dev/a.PDF"))
	assert.Equal(t, "pdf", attachmentExt("https://x.dev/a.pdf?v=2"))
	assert.Equal(t, "jpg", attachmentExt("https://x.dev/a.png"))
	assert.Equal(t, "jpg", attachmentExt("https://x.dev/a"))
}

func TestSlugCollisionLaterRecordWins(t *testing.T) {
	records := []content.Record{
		{ID: "rec-1", Title: "Same Name", Description: "first"},
		{ID: "rec-2", Title: "Same Name", Description: "second"},
	}
	fs := Build(records, logging.NewNop())

	// later record replaces the earlier one in the projects branch
	overview, err := fs.Read("/projects/same-name/overview.txt", "/")
	require.NoError(t, err)
	assert.Contains(t, overview, "second")

	id, ok := fs.ProjectIDForPath("/projects/same-name", "/")
	require.True(t, ok)
	assert.Equal(t, "rec-2", id)

	// only one child under /projects despite two records
	entries, err := fs.List("/projects", "/")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestProjectIDBridges(t *testing.T) {
	fs := testFS(t)

	id, ok := fs.ProjectIDForPath("/projects/alpha-beta/decisions.log", "/")
	require.True(t, ok)
	assert.Equal(t, "rec-alpha", id)

	id, ok = fs.ProjectIDForPath("attachments/shot.jpg", "/projects/alpha-beta")
	require.True(t, ok)
	assert.Equal(t, "rec-alpha", id)

	_, ok = fs.ProjectIDForPath("/base/about.txt", "/")
	assert.False(t, ok)

	path, ok := fs.PathForProjectID("rec-gamma")
	require.True(t, ok)
	assert.Equal(t, "/projects/gamma-ledger", path)

	_, ok = fs.PathForProjectID("rec-unknown")
	assert.False(t, ok)
}
