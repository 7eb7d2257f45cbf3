// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pdiddy/cv-builder/pkg/types"
)

const (
	untitled         = "Untitled"
	emptyGroup       = "No entries yet."
	defaultLinkLabel = "Link"
	separator        = " • "
)

// shell is the page skeleton used when no host page is supplied.
const shell = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Publications</title></head>
<body>
<main>
<h1>Publications</h1>
<p><a id="` + PDFLinkID + `" href="#">Full CV (PDF)</a></p>
<p id="` + StatusID + `">Loading publications…</p>
<div id="` + ListID + `"></div>
</main>
</body>
</html>
`

// NewShell returns a fresh page skeleton with the list container, status
// element, and PDF link in place.
func NewShell() (*html.Node, error) {
	return html.Parse(strings.NewReader(shell))
}

// element creates an element node. attrs are key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// withText creates an element holding a single text node.
func withText(a atom.Atom, class, s string) *html.Node {
	n := element(a, "class", class)
	n.AppendChild(text(s))
	return n
}

// renderSection renders a heading and either the entry list or the
// empty-group placeholder.
func renderSection(g Group) *html.Node {
	section := element(atom.Section, "class", "pub-section", "data-subtype", g.Subtype)
	section.AppendChild(withText(atom.H3, "pub-heading", g.Label))

	if len(g.Entries) == 0 {
		section.AppendChild(withText(atom.P, "pub-empty", emptyGroup))
		return section
	}

	list := element(atom.Ol, "class", "pub-list")
	for _, p := range g.Entries {
		list.AppendChild(renderEntry(p))
	}
	section.AppendChild(list)
	return section
}

// renderEntry renders one publication. Empty authors, venue/year, and
// link rows are omitted entirely rather than rendered as empty elements.
func renderEntry(p types.WebPublication) *html.Node {
	item := element(atom.Li, "class", "pub-item")

	title := p.Title
	if title == "" {
		title = untitled
	}
	item.AppendChild(withText(atom.Div, "pub-title", title))

	if p.Authors != "" {
		item.AppendChild(withText(atom.Div, "pub-authors", p.Authors))
	}

	var venue []string
	for _, s := range []string{p.Venue, p.Year.String()} {
		if s != "" {
			venue = append(venue, s)
		}
	}
	if len(venue) > 0 {
		item.AppendChild(withText(atom.Div, "pub-venue", strings.Join(venue, separator)))
	}

	if links := renderLinks(p.Links); links != nil {
		item.AppendChild(links)
	}
	return item
}

// renderLinks renders the anchors for links that have a URL, separated
// by the bullet glyph, or returns nil when there are none. Anchors open
// in a new tab without access to the opener.
func renderLinks(links []types.Link) *html.Node {
	var row *html.Node
	for _, l := range links {
		if l.URL == "" {
			continue
		}
		if row == nil {
			row = element(atom.Div, "class", "pub-links")
		} else {
			row.AppendChild(text(separator))
		}
		label := l.Label
		if label == "" {
			label = defaultLinkLabel
		}
		a := element(atom.A, "href", l.URL, "target", "_blank", "rel", "noopener noreferrer")
		a.AppendChild(text(label))
		row.AppendChild(a)
	}
	return row
}
