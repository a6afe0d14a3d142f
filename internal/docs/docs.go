package docs

import (
	"errors"
	"strings"
)

// ErrUnparsable reports input that cannot be interpreted as markup at all.
// Recoverable markup problems never produce it; extraction degrades to
// best-effort section boundaries instead.
var ErrUnparsable = errors.New("document is not parseable markup")

// UntitledSection is the display title for sections whose heading is empty.
const UntitledSection = "Untitled Section"

// Section is a titled, anchor-addressable unit of extracted documentation
// text. Sections are immutable once constructed; a group's sections are
// rebuilt wholesale on reload, never mutated in place.
type Section struct {
	Title   string `json:"title"`
	Anchor  string `json:"anchor"`
	Content string `json:"content"`
	Group   string `json:"group"`
}

// Path returns the in-page fragment link for the section.
// Example: anchor "active-record-migrations" -> "#active-record-migrations"
func (s Section) Path() string {
	return "#" + s.Anchor
}

// NewAnchor derives a URL-fragment-safe identifier from a section title.
// Runs of non-alphanumeric characters collapse to a single hyphen.
// Example: "Fields of Active Record" -> "fields-of-active-record"
func NewAnchor(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pending := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pending = false
			continue
		}
		pending = true
	}
	return b.String()
}
