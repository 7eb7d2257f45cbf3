// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex exports keyed records as a BibTeX bibliography.
package bibtex

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/cv-builder/internal/document"
	"github.com/pdiddy/cv-builder/pkg/types"
)

const defaultEntryType = "misc"

// Field is one "name = {value}" pair of an entry.
type Field struct {
	Name  string
	Value string
}

// Entry is a bibliography entry ready to be formatted.
type Entry struct {
	Type   string
	Key    string
	Fields []Field
}

// Entries returns one entry per record with a citation key (see
// types.Publication.BibKey), in record order. Records without a key are
// skipped. Key uniqueness and entry syntax are checked by
// source.Validate before this runs.
func Entries(records []types.Publication) []Entry {
	var entries []Entry
	for _, r := range records {
		if e, ok := EntryFor(r); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// EntryFor returns the entry for a single record, or false when the
// record has no citation key.
func EntryFor(r types.Publication) (Entry, bool) {
	key := r.BibKey()
	if key == "" {
		return Entry{}, false
	}
	entryType := r.Bib.Type
	if entryType == "" {
		entryType = defaultEntryType
	}
	return Entry{Type: entryType, Key: key, Fields: fields(r)}, true
}

// Problems reports why e cannot be written as a well-formed entry: a key
// containing whitespace, a comma, or a brace, and field values whose
// braces do not balance. Values are written verbatim, so an unbalanced
// brace would end the field early.
func (e Entry) Problems() []string {
	var problems []string
	if strings.ContainsAny(e.Key, ",{}") || strings.IndexFunc(e.Key, unicode.IsSpace) >= 0 {
		problems = append(problems, fmt.Sprintf("bibliography key %q must not contain whitespace, commas, or braces", e.Key))
	}
	for _, f := range e.Fields {
		if !balanced(f.Value) {
			problems = append(problems, fmt.Sprintf("bibliography field %q has unbalanced braces", f.Name))
		}
	}
	return problems
}

// balanced reports whether every closing brace in s matches an earlier
// opening brace and none are left open.
func balanced(s string) bool {
	depth := 0
	for _, c := range s {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// fields returns the explicit bib fields sorted by name, or fields
// derived from the PDF-facing text when none are given.
func fields(r types.Publication) []Field {
	if len(r.Bib.Fields) > 0 {
		names := make([]string, 0, len(r.Bib.Fields))
		for name := range r.Bib.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		out := make([]Field, len(names))
		for i, name := range names {
			out[i] = Field{Name: name, Value: r.Bib.Fields[name]}
		}
		return out
	}

	var url string
	for _, l := range r.Links {
		if l.URL != "" {
			url = l.URL
			break
		}
	}

	var out []Field
	for _, f := range []Field{
		{"title", document.PDFTitle(r)},
		{"author", document.PDFAuthors(r)},
		{"year", r.Year.String()},
		{"note", document.PDFVenue(r)},
		{"howpublished", url},
	} {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}

// Generate produces BibTeX content for the keyed records. Field values
// are written verbatim so that LaTeX markup in the source survives.
func Generate(records []types.Publication) string {
	var b strings.Builder
	for _, e := range Entries(records) {
		fmt.Fprintf(&b, "@%s{%s,\n", e.Type, e.Key)
		for _, f := range e.Fields {
			fmt.Fprintf(&b, "  %s = {%s},\n", f.Name, f.Value)
		}
		fmt.Fprintf(&b, "}\n\n")
	}
	return b.String()
}
