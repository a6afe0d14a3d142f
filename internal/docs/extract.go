package docs

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// sectionBuilder accumulates one section while later siblings are walked.
type sectionBuilder struct {
	level   int
	title   string
	content strings.Builder
}

// Extract parses one HTML document and returns its sections in document
// order, every one stamped with the given group label.
//
// Headings h1-h3 introduce sections. A section's content is the text of
// everything after its heading until the next heading of equal-or-higher
// level, so an h2 section keeps the text of its h3 subsections and an h3
// heading also opens a section of its own. h4-h6 are ordinary content.
// A document with no headings yields an empty slice, not an error.
func Extract(r io.Reader, group string) ([]Section, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	var builders []*sectionBuilder
	var open []*sectionBuilder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			for _, b := range open {
				b.content.WriteString(n.Data)
				b.content.WriteByte(' ')
			}
			return

		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Head, atom.Template, atom.Noscript:
				return
			}
			if level := headingLevel(n); level > 0 {
				text := nodeText(n)

				// Close every open section this heading terminates.
				for len(open) > 0 && open[len(open)-1].level >= level {
					open = open[:len(open)-1]
				}

				// The heading text is still content for the sections
				// that remain open above it.
				for _, b := range open {
					b.content.WriteString(text)
					b.content.WriteByte(' ')
				}

				sb := &sectionBuilder{level: level, title: text}
				builders = append(builders, sb)
				open = append(open, sb)
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	sections := make([]Section, 0, len(builders))
	for _, sb := range builders {
		title := normalizeText(sb.title)
		if title == "" {
			title = UntitledSection
		}
		sections = append(sections, Section{
			Title:   title,
			Anchor:  NewAnchor(title),
			Content: normalizeText(sb.content.String()),
			Group:   group,
		})
	}
	return sections, nil
}

// headingLevel reports the section-heading level of an element, or 0 for
// elements that do not introduce a section.
func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	}
	return 0
}

// nodeText collects the raw text of a subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

// normalizeText collapses all whitespace runs to single spaces.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
