// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WebPublication is the web-track projection of a Publication, as
// written to cv.json and read back by the renderer.
type WebPublication struct {
	ID      string `json:"id,omitempty"`
	Subtype string `json:"subtype"`
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Venue   string `json:"venue"`
	Year    Year   `json:"year,omitempty"`
	Links   []Link `json:"links"`
}

// Document is the generated cv.json: the only contract between the
// transformer and the renderer.
type Document struct {
	Publications []WebPublication `json:"publications"`
	Web          WebConfig        `json:"web"`
}
