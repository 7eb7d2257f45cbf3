// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads and validates the structured CV source file.
// Implements: the transformer's Load step and its required-field checks.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cv-builder/internal/bibtex"
	"github.com/pdiddy/cv-builder/pkg/types"
)

// LoadError reports a source file that is absent, unreadable, or malformed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Violation is one broken required-field rule.
type Violation struct {
	// Record locates the offending record, e.g. "publications[3]".
	Record string
	// Message describes the rule that was broken.
	Message string
}

func (v Violation) String() string {
	return v.Record + ": " + v.Message
}

// ValidationError collects every violation found in a source file.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e.Violations), strings.Join(parts, "; "))
}

// Load reads the source file at path. YAML and JSON are both accepted;
// JSON is decoded by the YAML parser. Keys the builder does not know are
// ignored.
func Load(path string) (*types.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	src, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return src, nil
}

// Parse decodes source data. An empty document decodes to an empty Source.
func Parse(data []byte) (*types.Source, error) {
	var src types.Source
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&src); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing source: %w", err)
	}
	return &src, nil
}

// Validate checks the invariants the outputs depend on: every record has
// a non-empty subtype, bibliography entries are well formed, and no two
// records share a bibliography key. It
// returns a *ValidationError listing every violation, or nil.
func Validate(src *types.Source) error {
	var violations []Violation
	keys := make(map[string]string)

	check := func(list string, records []types.Publication) {
		for i, p := range records {
			where := fmt.Sprintf("%s[%d]", list, i)
			if p.ID != "" {
				where += " (" + p.ID + ")"
			}
			if strings.TrimSpace(p.Subtype) == "" {
				violations = append(violations, Violation{Record: where, Message: "subtype is required"})
			}
			entry, ok := bibtex.EntryFor(p)
			if !ok {
				continue
			}
			for _, msg := range entry.Problems() {
				violations = append(violations, Violation{Record: where, Message: msg})
			}
			if first, ok := keys[entry.Key]; ok {
				violations = append(violations, Violation{
					Record:  where,
					Message: fmt.Sprintf("bibliography key %q already used by %s", entry.Key, first),
				})
				continue
			}
			keys[entry.Key] = where
		}
	}
	check("publications", src.Publications)
	check("grants", src.Grants)

	for i, s := range src.Sections {
		if strings.TrimSpace(s.Heading) == "" {
			violations = append(violations, Violation{
				Record:  fmt.Sprintf("cv_sections[%d]", i),
				Message: "heading is required",
			})
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
