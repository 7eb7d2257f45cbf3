// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex writes the LaTeX fragments of the PDF track: CV sections
// and the publications/grants listings. The fragments define no macros;
// they are meant to be \input into a larger document.
package latex

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/cv-builder/internal/document"
	"github.com/pdiddy/cv-builder/pkg/types"
)

// escaper replaces every LaTeX special character in a single pass, so
// replacement text is never escaped a second time.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape makes s safe to place in LaTeX text mode.
func Escape(s string) string {
	return escaper.Replace(s)
}

// header returns the leading comment of a generated file.
func header(sourceName string) string {
	return fmt.Sprintf("%% Auto-generated from %s\n\n", Escape(sourceName))
}

// WriteSections writes each CV section as an unnumbered section heading
// followed by an itemized list of its lines.
func WriteSections(w io.Writer, sections []types.CVSection, sourceName string) error {
	var b strings.Builder
	b.WriteString(header(sourceName))
	for _, s := range sections {
		fmt.Fprintf(&b, "\\section*{%s}\n", Escape(s.Heading))
		if len(s.Lines) > 0 {
			b.WriteString("\\begin{itemize}\n")
			for _, line := range s.Lines {
				fmt.Fprintf(&b, "\\item %s\n", Escape(line))
			}
			b.WriteString("\\end{itemize}\n")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Group is the records of one subtype in source order.
type Group struct {
	Subtype string
	Records []types.Publication
}

// GroupRecords groups records by subtype. Groups for the display
// subtypes come first in display order, followed by every other subtype
// in order of first appearance. Display subtypes without records are
// left out.
func GroupRecords(records []types.Publication, displayOrder []string) []Group {
	bySubtype := make(map[string][]types.Publication)
	var seen []string
	for _, r := range records {
		if _, ok := bySubtype[r.Subtype]; !ok {
			seen = append(seen, r.Subtype)
		}
		bySubtype[r.Subtype] = append(bySubtype[r.Subtype], r)
	}

	var groups []Group
	placed := make(map[string]bool)
	for _, subtype := range displayOrder {
		if placed[subtype] || len(bySubtype[subtype]) == 0 {
			continue
		}
		placed[subtype] = true
		groups = append(groups, Group{Subtype: subtype, Records: bySubtype[subtype]})
	}
	for _, subtype := range seen {
		if placed[subtype] {
			continue
		}
		placed[subtype] = true
		groups = append(groups, Group{Subtype: subtype, Records: bySubtype[subtype]})
	}
	return groups
}

// WritePublications writes every record, pdf_only ones included, as
// enumerated list items under a heading per subtype. Item text comes
// from the PDF-facing fields.
func WritePublications(w io.Writer, records []types.Publication, web types.WebConfig, sourceName string) error {
	var b strings.Builder
	b.WriteString(header(sourceName))
	for _, g := range GroupRecords(records, web.DisplaySubtypes) {
		fmt.Fprintf(&b, "\\section*{%s}\n", Escape(web.Label(g.Subtype)))
		b.WriteString("\\begin{enumerate}\n")
		for _, r := range g.Records {
			b.WriteString(Item(r))
			b.WriteString("\n")
		}
		b.WriteString("\\end{enumerate}\n\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Item formats one record as "\item Title. Authors. Venue. Year." with
// a trailing \href for the first link that has a URL.
func Item(r types.Publication) string {
	var parts []string
	for _, p := range []string{
		document.PDFTitle(r),
		document.PDFAuthors(r),
		document.PDFVenue(r),
		r.Year.String(),
	} {
		if p != "" {
			parts = append(parts, Escape(p))
		}
	}

	item := `\item`
	if len(parts) > 0 {
		item += " " + strings.Join(parts, ". ") + "."
	}
	for _, l := range r.Links {
		if l.URL == "" {
			continue
		}
		label := l.Label
		if label == "" {
			label = "Link"
		}
		item += fmt.Sprintf(` \href{%s}{%s}`, Escape(l.URL), Escape(label))
		break
	}
	return item
}
