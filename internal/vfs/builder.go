package vfs

import (
	"fmt"
	"strings"

	"github.com/casefolio/console/internal/content"
	"github.com/casefolio/console/internal/logging"
	"go.uber.org/zap"
)

// emDash separates a project title from its qualifier; only the part
// before it contributes to the slug.
const emDash = "—"

// Slugify derives a path-safe name from a human-readable title or
// caption: lowercase, cut at an em-dash, runs of anything outside
// [a-z0-9] collapse to a single hyphen, edge hyphens stripped.
func Slugify(title string) string {
	s := title
	if i := strings.Index(s, emDash); i >= 0 {
		s = s[:i]
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// attachmentExt infers a file extension from the attachment URL;
// anything that is not a PDF is treated as an image.
func attachmentExt(url string) string {
	u := url
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	if strings.HasSuffix(strings.ToLower(u), ".pdf") {
		return "pdf"
	}
	return "jpg"
}

// Build constructs the immutable tree from the ordered record list.
// The root holds exactly three branches: base (static site content),
// projects (one subtree per record), and meta (system information).
// Build is the only place the tree is ever mutated; the returned FS
// is safe for unsynchronized concurrent reads.
func Build(records []content.Record, logger *logging.Logger) *FS {
	if logger == nil {
		logger = logging.NewNop()
	}

	root := newDir("/", "/")

	base := newDir("base", "/base")
	for _, f := range baseFiles {
		base.addChild(newFile(f.name, joinChild(base.path, f.name), f.content))
	}
	root.addChild(base)

	projects := newDir("projects", "/projects")
	root.addChild(projects)

	fs := &FS{
		root:     root,
		idByPath: make(map[string]string, len(records)),
		pathByID: make(map[string]string, len(records)),
	}

	for _, rec := range records {
		slug := Slugify(rec.Title)
		if slug == "" {
			slug = rec.ID
		}
		// Known limitation: identical title slugs across records are
		// not deduplicated; the later record replaces the earlier one.
		if projects.hasChild(slug) {
			logger.Warn("project slug collision, later record replaces earlier",
				zap.String("slug", slug),
				zap.String("record_id", rec.ID),
			)
		}
		dir := buildProjectDir(projects.path, slug, rec)
		projects.addChild(dir)
		fs.idByPath[dir.path] = rec.ID
		fs.pathByID[rec.ID] = dir.path
	}

	meta := newDir("meta", "/meta")
	for _, f := range metaFiles {
		meta.addChild(newFile(f.name, joinChild(meta.path, f.name), f.content))
	}
	root.addChild(meta)

	logger.Info("virtual filesystem built",
		zap.Int("records", len(records)),
		zap.Int("projects", len(fs.pathByID)),
	)
	return fs
}

// buildProjectDir builds one project subtree: four templated text
// files plus an attachments directory when the record has any.
func buildProjectDir(parentPath, slug string, rec content.Record) *Dir {
	dir := newDir(slug, joinChild(parentPath, slug))
	dir.projectID = rec.ID

	add := func(name, body string) {
		dir.addChild(newFile(name, joinChild(dir.path, name), body))
	}
	add("overview.txt", renderOverview(rec))
	add("architecture.txt", renderArchitecture(rec))
	add("decisions.log", renderDecisions(rec))
	add("impact.txt", renderImpact(rec))

	if len(rec.Attachments) > 0 {
		attachments := newDir("attachments", joinChild(dir.path, "attachments"))
		for i, att := range rec.Attachments {
			name := attachmentName(attachments, att, i)
			f := newFile(name, joinChild(attachments.path, name), attachmentBody(att))
			f.externalURL = att.URL
			attachments.addChild(f)
		}
		dir.addChild(attachments)
	}
	return dir
}

// attachmentName derives a unique sibling name for an attachment:
// slug of the caption (or an ordinal fallback) plus an inferred
// extension, with "-1", "-2", … inserted before the extension until
// the name is free.
func attachmentName(parent *Dir, att content.Attachment, ordinal int) string {
	base := Slugify(att.Caption)
	if base == "" {
		base = fmt.Sprintf("attachment-%d", ordinal+1)
	}
	ext := attachmentExt(att.URL)

	name := base + "." + ext
	for n := 1; parent.hasChild(name); n++ {
		name = fmt.Sprintf("%s-%d.%s", base, n, ext)
	}
	return name
}

func attachmentBody(att content.Attachment) string {
	var b strings.Builder
	if att.Caption != "" {
		b.WriteString(att.Caption + "\n")
	}
	if att.Alt != "" {
		b.WriteString(att.Alt + "\n")
	}
	b.WriteString(att.URL + "\n")
	return b.String()
}

func renderOverview(rec content.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", rec.Title, strings.Repeat("=", len([]rune(rec.Title))))
	fmt.Fprintf(&b, "Role: %s\n\n", rec.Role)
	b.WriteString(rec.Description + "\n")
	if rec.Problem != "" {
		fmt.Fprintf(&b, "\nProblem\n-------\n%s\n", rec.Problem)
	}
	if len(rec.Links) > 0 {
		b.WriteString("\nLinks\n-----\n")
		for _, link := range rec.Links {
			fmt.Fprintf(&b, "%s: %s\n", link.Label, link.URL)
		}
	}
	return b.String()
}

func renderArchitecture(rec content.Record) string {
	var b strings.Builder
	b.WriteString("Architecture Notes\n------------------\n")
	if rec.Diagram != "" {
		fmt.Fprintf(&b, "Diagram: %s\n\n", rec.Diagram)
	}
	if len(rec.Highlights) == 0 {
		b.WriteString("No technical highlights recorded.\n")
		return b.String()
	}
	for _, h := range rec.Highlights {
		fmt.Fprintf(&b, "* %s\n", h)
	}
	return b.String()
}

func renderDecisions(rec content.Record) string {
	var b strings.Builder
	b.WriteString("Decision Log\n------------\n")
	if len(rec.Decisions) == 0 {
		b.WriteString("No decisions recorded.\n")
		return b.String()
	}
	for i, d := range rec.Decisions {
		fmt.Fprintf(&b, "%03d  %s\n", i+1, d)
	}
	return b.String()
}

func renderImpact(rec content.Record) string {
	var b strings.Builder
	b.WriteString("Impact\n------\n")
	if len(rec.Metrics) == 0 {
		b.WriteString("No impact metrics recorded.\n")
		return b.String()
	}
	for _, m := range rec.Metrics {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	return b.String()
}

type staticFile struct {
	name    string
	content string
}

var baseFiles = []staticFile{
	{"about.txt", "Casefolio is an interactive console for browsing engineering\ncase studies. Navigate it like a filesystem: list, open, read,\ntree, and search.\n"},
	{"contact.txt", "Email: hello@casefolio.dev\nSource: https://github.com/casefolio/console\n"},
	{"guide.txt", "Start with `list /projects`, then `open` a project directory.\nEach project has an overview, architecture notes, a decision\nlog, and impact metrics. `search <keyword>` scans everything.\n"},
}

var metaFiles = []staticFile{
	{"system.txt", "casefolio console\nread-only virtual filesystem, built once at startup\n"},
	{"colophon.txt", "Served by a small Go service. The tree you are browsing lives\nentirely in memory; nothing you do here can change it.\n"},
}
