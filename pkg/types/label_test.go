// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestDeriveLabel(t *testing.T) {
	tests := []struct {
		subtype string
		want    string
	}{
		{"conference", "Conference"},
		{"book_chapter", "Book Chapter"},
		{"peer_reviewed_journal", "Peer Reviewed Journal"},
		{"already_Upper", "Already Upper"},
		{"éditorial", "Éditorial"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.subtype, func(t *testing.T) {
			if got := DeriveLabel(tt.subtype); got != tt.want {
				t.Errorf("DeriveLabel(%q) = %q, want %q", tt.subtype, got, tt.want)
			}
		})
	}
}

func TestWebConfigLabel(t *testing.T) {
	cfg := WebConfig{SubtypeLabels: map[string]string{
		"journal": "Journal Articles",
		"blank":   "",
	}}

	if got := cfg.Label("journal"); got != "Journal Articles" {
		t.Errorf("Label(journal) = %q, want %q", got, "Journal Articles")
	}
	if got := cfg.Label("conference"); got != "Conference" {
		t.Errorf("Label(conference) = %q, want %q", got, "Conference")
	}
	if got := cfg.Label("blank"); got != "Blank" {
		t.Errorf("Label(blank) = %q, want %q", got, "Blank")
	}
	if got := (WebConfig{}).Label("tech_report"); got != "Tech Report" {
		t.Errorf("Label(tech_report) with nil map = %q, want %q", got, "Tech Report")
	}
}

func TestYearJSON(t *testing.T) {
	tests := []struct {
		year Year
		want string
	}{
		{"2021", "2021"},
		{"in press", `"in press"`},
		{"0", "0"},
		{"0123", `"0123"`},
		{"-5", `"-5"`},
		{"", `""`},
	}
	for _, tt := range tests {
		t.Run(string(tt.year), func(t *testing.T) {
			got, err := tt.year.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalJSON(%q) = %s, want %s", tt.year, got, tt.want)
			}
		})
	}
}
