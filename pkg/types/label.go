// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label returns the heading for subtype: the configured label when one
// exists, otherwise DeriveLabel(subtype).
func (w WebConfig) Label(subtype string) string {
	if label, ok := w.SubtypeLabels[subtype]; ok && label != "" {
		return label
	}
	return DeriveLabel(subtype)
}

// DeriveLabel turns a subtype identifier into a heading by splitting on
// underscores and upper-casing the first letter of each segment:
// "book_chapter" becomes "Book Chapter".
func DeriveLabel(subtype string) string {
	segments := strings.Split(subtype, "_")
	for i, s := range segments {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			continue
		}
		segments[i] = string(unicode.ToUpper(r)) + s[size:]
	}
	return strings.Join(segments, " ")
}
