// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document projects source records onto the web track and
// serializes the generated cv.json document.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/cv-builder/pkg/types"
)

// FirstNonEmpty returns the first candidate that is not the empty string,
// or "" when every candidate is empty.
func FirstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// WebTitle returns the web-facing title: title_web, then title.
// The PDF-facing title is never used on the web.
func WebTitle(p types.Publication) string { return FirstNonEmpty(p.TitleWeb, p.Title) }

// WebAuthors returns the web-facing author line.
func WebAuthors(p types.Publication) string { return FirstNonEmpty(p.AuthorsWeb, p.Authors) }

// WebVenue returns the web-facing venue.
func WebVenue(p types.Publication) string { return FirstNonEmpty(p.VenueWeb, p.Venue) }

// PDFTitle returns the PDF-facing title: title_pdf, then title, then
// title_web.
func PDFTitle(p types.Publication) string {
	return FirstNonEmpty(p.TitlePDF, p.Title, p.TitleWeb)
}

// PDFAuthors returns the PDF-facing author line.
func PDFAuthors(p types.Publication) string {
	return FirstNonEmpty(p.AuthorsPDF, p.Authors, p.AuthorsWeb)
}

// PDFVenue returns the PDF-facing venue.
func PDFVenue(p types.Publication) string {
	return FirstNonEmpty(p.VenuePDF, p.Venue, p.VenueWeb)
}

// Project converts a record to its web-track shape.
func Project(p types.Publication) types.WebPublication {
	links := make([]types.Link, len(p.Links))
	copy(links, p.Links)
	return types.WebPublication{
		ID:      p.ID,
		Subtype: p.Subtype,
		Title:   WebTitle(p),
		Authors: WebAuthors(p),
		Venue:   WebVenue(p),
		Year:    p.Year,
		Links:   links,
	}
}

// Build assembles the generated document: every record not flagged
// pdf_only, in source order, plus the web display configuration. Nil
// collections are normalized so the JSON never carries null arrays or
// objects.
func Build(src *types.Source) types.Document {
	pubs := make([]types.WebPublication, 0, len(src.Publications))
	for _, p := range src.Publications {
		if p.PDFOnly {
			continue
		}
		pubs = append(pubs, Project(p))
	}

	web := src.Web
	if web.DisplaySubtypes == nil {
		web.DisplaySubtypes = []string{}
	}
	if web.SubtypeLabels == nil {
		web.SubtypeLabels = map[string]string{}
	}

	return types.Document{Publications: pubs, Web: web}
}

// Marshal encodes doc as indented JSON with a trailing newline. HTML
// characters are left unescaped. Map keys are sorted by encoding/json,
// so equal documents always produce identical bytes.
func Marshal(doc types.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes doc to w.
func Write(w io.Writer, doc types.Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
