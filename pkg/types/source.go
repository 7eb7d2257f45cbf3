// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WebConfig controls which publications the web page shows and how the
// groups are labelled.
type WebConfig struct {
	// DisplaySubtypes lists the subtypes shown on the web page, in order.
	// Subtypes not listed are hidden from the web view only.
	DisplaySubtypes []string `json:"display_subtypes" yaml:"display_subtypes"`

	// SubtypeLabels maps a subtype to its section heading.
	SubtypeLabels map[string]string `json:"subtype_labels" yaml:"subtype_labels"`

	// PDFLink points at the complete PDF curriculum vitae.
	PDFLink string `json:"pdf_link" yaml:"pdf_link"`
}

// CVSection is a heading and its text lines for the PDF track.
type CVSection struct {
	Heading string   `json:"heading" yaml:"heading"`
	Lines   []string `json:"lines" yaml:"lines"`
}

// Source is the human-edited source record collection.
type Source struct {
	Web          WebConfig     `json:"web" yaml:"web"`
	Publications []Publication `json:"publications" yaml:"publications"`

	// Grants are rendered on the PDF track only.
	Grants []Publication `json:"grants,omitempty" yaml:"grants,omitempty"`

	// Sections are the free-text CV sections (education, service, ...).
	Sections []CVSection `json:"cv_sections,omitempty" yaml:"cv_sections,omitempty"`
}
