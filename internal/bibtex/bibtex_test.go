// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"strings"
	"testing"

	"github.com/pdiddy/cv-builder/pkg/types"
)

func TestGenerateExplicitFields(t *testing.T) {
	records := []types.Publication{{
		Subtype: "journal",
		Title:   "Ignored when fields are explicit",
		Bib: &types.BibEntry{
			Key:  "Lovelace1843",
			Type: "article",
			Fields: map[string]string{
				"title":   "Notes",
				"journal": "Taylor's Scientific Memoirs",
				"year":    "1843",
			},
		},
	}}

	got := Generate(records)
	want := "@article{Lovelace1843,\n" +
		"  journal = {Taylor's Scientific Memoirs},\n" +
		"  title = {Notes},\n" +
		"  year = {1843},\n" +
		"}\n\n"
	if got != want {
		t.Errorf("Generate() =\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateDerivedFields(t *testing.T) {
	records := []types.Publication{{
		Subtype:  "conference",
		Title:    "Shared",
		TitlePDF: "Printed Title",
		Authors:  "A. Author and B. Author",
		Venue:    "Proc. Things",
		Year:     "2022",
		Links: []types.Link{
			{Label: "broken"},
			{Label: "PDF", URL: "https://example.com/p.pdf"},
		},
		Bib: &types.BibEntry{Key: "Author2022"},
	}}

	got := Generate(records)
	want := "@misc{Author2022,\n" +
		"  title = {Printed Title},\n" +
		"  author = {A. Author and B. Author},\n" +
		"  year = {2022},\n" +
		"  note = {Proc. Things},\n" +
		"  howpublished = {https://example.com/p.pdf},\n" +
		"}\n\n"
	if got != want {
		t.Errorf("Generate() =\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateSkipsUnkeyed(t *testing.T) {
	records := []types.Publication{
		{Subtype: "journal", Title: "No bib block"},
		{Subtype: "journal", Title: "Empty key", Bib: &types.BibEntry{Type: "article"}},
		{Subtype: "journal", Title: "Keyed", Bib: &types.BibEntry{Key: "K1"}},
	}

	entries := Entries(records)
	if len(entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(entries))
	}
	if entries[0].Key != "K1" {
		t.Errorf("Key = %q, want %q", entries[0].Key, "K1")
	}
	if strings.Count(Generate(records), "@") != 1 {
		t.Errorf("expected exactly one entry in output")
	}
}

func TestEntriesKeyFallsBackToID(t *testing.T) {
	records := []types.Publication{
		{ID: "smith2020", Subtype: "journal", Title: "Keyed by ID", Bib: &types.BibEntry{}},
		{ID: "jones2021", Subtype: "journal", Title: "Explicit key wins", Bib: &types.BibEntry{Key: "Jones21"}},
		{ID: "doe2022", Subtype: "journal", Title: "No bib block"},
	}

	entries := Entries(records)
	if len(entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(entries))
	}
	if entries[0].Key != "smith2020" || entries[0].Type != "misc" {
		t.Errorf("entries[0] = %s/%s, want misc/smith2020", entries[0].Type, entries[0].Key)
	}
	if entries[1].Key != "Jones21" {
		t.Errorf("entries[1].Key = %q, want %q", entries[1].Key, "Jones21")
	}
}

func TestEntryProblems(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  int
	}{
		{"well formed", Entry{Key: "K1", Fields: []Field{{"title", `The {\em Engine}`}}}, 0},
		{"closing brace first", Entry{Key: "K1", Fields: []Field{{"title", "Sets } and maps {"}}}, 1},
		{"unclosed brace", Entry{Key: "K1", Fields: []Field{{"author", "{A. Author"}}}, 1},
		{"space in key", Entry{Key: "K 1"}, 1},
		{"tab in key", Entry{Key: "K\t1"}, 1},
		{"comma in key", Entry{Key: "K,1"}, 1},
		{"brace in key", Entry{Key: "K}1"}, 1},
		{"bad key and field", Entry{Key: "K 1", Fields: []Field{{"note", "}"}}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Problems(); len(got) != tt.want {
				t.Errorf("Problems() = %q, want %d problem(s)", got, tt.want)
			}
		})
	}
}

func TestGenerateEmpty(t *testing.T) {
	if got := Generate(nil); got != "" {
		t.Errorf("Generate(nil) = %q, want empty", got)
	}
}

func TestGeneratePreservesRecordOrder(t *testing.T) {
	records := []types.Publication{
		{Subtype: "journal", Title: "Z", Bib: &types.BibEntry{Key: "Zeta2020"}},
		{Subtype: "journal", Title: "A", Bib: &types.BibEntry{Key: "Alpha2020"}},
	}

	out := Generate(records)
	if strings.Index(out, "Zeta2020") > strings.Index(out, "Alpha2020") {
		t.Errorf("entries should follow record order:\n%s", out)
	}
}
