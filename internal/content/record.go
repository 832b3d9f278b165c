// Package content defines the project records the console tree is
// built from, and loads them from a YAML catalog.
package content

// Record describes one showcased project. The ordered record list is
// the sole construction input for the virtual filesystem.
type Record struct {
	ID          string       `yaml:"id" json:"id"`
	Title       string       `yaml:"title" json:"title"`
	Role        string       `yaml:"role" json:"role"`
	Description string       `yaml:"description" json:"description"`
	Problem     string       `yaml:"problem,omitempty" json:"problem,omitempty"`
	Diagram     string       `yaml:"diagram,omitempty" json:"diagram,omitempty"`
	Highlights  []string     `yaml:"highlights,omitempty" json:"highlights,omitempty"`
	Decisions   []string     `yaml:"decisions,omitempty" json:"decisions,omitempty"`
	Metrics     []string     `yaml:"metrics,omitempty" json:"metrics,omitempty"`
	Links       []Link       `yaml:"links,omitempty" json:"links,omitempty"`
	Attachments []Attachment `yaml:"attachments,omitempty" json:"attachments,omitempty"`
}

// Link is an external reference shown alongside a project.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Attachment is a downloadable artifact attached to a project.
type Attachment struct {
	URL     string `yaml:"url" json:"url"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
	Alt     string `yaml:"alt,omitempty" json:"alt,omitempty"`
}
