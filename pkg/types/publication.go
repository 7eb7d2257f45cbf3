// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the cv-builder
// transformer and renderer.
// Implements: the source record collection (Publication, CVSection,
// WebConfig) and the generated document (Document, WebPublication).
package types

import (
	"bytes"
	"encoding/json"
)

// Link is a labelled URL attached to a publication.
type Link struct {
	// Label is the visible link text (e.g. "PDF", "DOI"). Optional.
	Label string `json:"label" yaml:"label"`

	// URL is the link target. Links without a URL are never rendered.
	URL string `json:"url" yaml:"url"`
}

// BibEntry carries the bibliography export block of a record.
type BibEntry struct {
	// Key is the BibTeX citation key. When empty the record ID is used.
	Key string `json:"key" yaml:"key"`

	// Type is the BibTeX entry type (e.g. "article"). Defaults to "misc".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Fields holds explicit BibTeX fields. When empty the fields are
	// derived from the record's PDF-facing text.
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Publication is a single bibliographic record from the source file.
// Grants share the same shape.
type Publication struct {
	// ID is an optional stable identifier for the record.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Subtype is the open-vocabulary category tag (e.g. "journal").
	// Required and non-empty.
	Subtype string `json:"subtype" yaml:"subtype"`

	// Shared text, used by both tracks when no track-specific text is given.
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Venue   string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// Web-facing text.
	TitleWeb   string `json:"title_web,omitempty" yaml:"title_web,omitempty"`
	AuthorsWeb string `json:"authors_web,omitempty" yaml:"authors_web,omitempty"`
	VenueWeb   string `json:"venue_web,omitempty" yaml:"venue_web,omitempty"`

	// PDF-facing text.
	TitlePDF   string `json:"title_pdf,omitempty" yaml:"title_pdf,omitempty"`
	AuthorsPDF string `json:"authors_pdf,omitempty" yaml:"authors_pdf,omitempty"`
	VenuePDF   string `json:"venue_pdf,omitempty" yaml:"venue_pdf,omitempty"`

	// Year is the publication year.
	Year Year `json:"year,omitempty" yaml:"year,omitempty"`

	// Links lists the record's links in display order.
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`

	// Bib is the optional bibliography export block.
	Bib *BibEntry `json:"bib,omitempty" yaml:"bib,omitempty"`

	// PDFOnly hides the record from the web track.
	PDFOnly bool `json:"pdf_only,omitempty" yaml:"pdf_only,omitempty"`
}

// BibKey returns the record's citation key: the bib block's key, or the
// record ID when the block gives none. Records without a bib block have
// no key.
func (p Publication) BibKey() string {
	if p.Bib == nil {
		return ""
	}
	if p.Bib.Key != "" {
		return p.Bib.Key
	}
	return p.ID
}

// Year is a publication year as written in the source: usually a number,
// occasionally free text such as "in press". Numeric years are encoded as
// JSON numbers, anything else as a JSON string.
type Year string

// MarshalJSON implements json.Marshaler.
func (y Year) MarshalJSON() ([]byte, error) {
	if isJSONInteger(string(y)) {
		return []byte(y), nil
	}
	return json.Marshal(string(y))
}

// UnmarshalJSON implements json.Unmarshaler. It accepts numbers, strings,
// and null.
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*y = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*y = Year(n.String())
	return nil
}

// String returns the year as text.
func (y Year) String() string {
	return string(y)
}

// isJSONInteger reports whether s is a valid JSON integer literal without
// sign or leading zeros.
func isJSONInteger(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
