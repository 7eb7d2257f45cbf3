// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build runs the transformer end to end: load and validate the
// source, render every artifact, then write the output tree.
package build

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/cv-builder/internal/bibtex"
	"github.com/pdiddy/cv-builder/internal/document"
	"github.com/pdiddy/cv-builder/internal/latex"
	"github.com/pdiddy/cv-builder/internal/source"
	"github.com/pdiddy/cv-builder/pkg/types"
)

const (
	jsonFile         = "cv.json"
	latexDir         = "latex"
	publicationsFile = "publications.tex"
	grantsFile       = "grants.tex"
	sectionsFile     = "sections.tex"
	bibFile          = "publications.bib"
)

// Options configures a build run.
type Options struct {
	// Source is the path to the source file.
	Source string

	// OutputDir receives the generated files.
	OutputDir string

	// Bibliography enables publications.bib.
	Bibliography bool
}

// Summary holds counts from a build run.
type Summary struct {
	WebEntries int
	PDFEntries int
	Grants     int
	Sections   int
	BibEntries int
	Files      []string
}

// Artifact is a rendered output file waiting to be written.
type Artifact struct {
	// Path is relative to the output directory.
	Path string
	Data []byte
}

// Run builds every output from opts.Source into opts.OutputDir. Load and
// validation errors are returned unchanged (*source.LoadError,
// *source.ValidationError). Artifacts are rendered in memory first, so a
// failed run writes nothing. Progress lines go to w.
func Run(opts Options, w io.Writer, log *zap.Logger) (Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}

	src, err := source.Load(opts.Source)
	if err != nil {
		return Summary{}, err
	}
	if err := source.Validate(src); err != nil {
		return Summary{}, err
	}
	log.Debug("source loaded",
		zap.String("source", opts.Source),
		zap.Int("publications", len(src.Publications)),
		zap.Int("grants", len(src.Grants)),
		zap.Int("sections", len(src.Sections)),
	)

	artifacts, summary, err := Render(src, filepath.Base(opts.Source), opts.Bibliography)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(filepath.Join(opts.OutputDir, latexDir), 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}
	for _, a := range artifacts {
		path := filepath.Join(opts.OutputDir, a.Path)
		if err := os.WriteFile(path, a.Data, 0o644); err != nil {
			return Summary{}, fmt.Errorf("writing %s: %w", path, err)
		}
		summary.Files = append(summary.Files, path)
		fmt.Fprintf(w, "wrote   %s\n", path)
		log.Debug("artifact written", zap.String("path", path), zap.Int("bytes", len(a.Data)))
	}

	fmt.Fprintf(w, "\n%d web entries, %d PDF entries, %d grants, %d sections, %d bibliography entries\n",
		summary.WebEntries, summary.PDFEntries, summary.Grants, summary.Sections, summary.BibEntries)
	return summary, nil
}

// Render produces every artifact for src without touching the
// filesystem. sourceName is quoted in the generated-file headers.
func Render(src *types.Source, sourceName string, bibliography bool) ([]Artifact, Summary, error) {
	var summary Summary
	var artifacts []Artifact

	var buf bytes.Buffer
	doc := document.Build(src)
	if err := document.Write(&buf, doc); err != nil {
		return nil, summary, err
	}
	artifacts = append(artifacts, Artifact{Path: jsonFile, Data: bytes.Clone(buf.Bytes())})
	summary.WebEntries = len(doc.Publications)

	buf.Reset()
	if err := latex.WritePublications(&buf, src.Publications, src.Web, sourceName); err != nil {
		return nil, summary, fmt.Errorf("rendering publications: %w", err)
	}
	artifacts = append(artifacts, Artifact{Path: filepath.Join(latexDir, publicationsFile), Data: bytes.Clone(buf.Bytes())})
	summary.PDFEntries = len(src.Publications)

	if len(src.Grants) > 0 {
		buf.Reset()
		if err := latex.WritePublications(&buf, src.Grants, src.Web, sourceName); err != nil {
			return nil, summary, fmt.Errorf("rendering grants: %w", err)
		}
		artifacts = append(artifacts, Artifact{Path: filepath.Join(latexDir, grantsFile), Data: bytes.Clone(buf.Bytes())})
		summary.Grants = len(src.Grants)
	}

	if len(src.Sections) > 0 {
		buf.Reset()
		if err := latex.WriteSections(&buf, src.Sections, sourceName); err != nil {
			return nil, summary, fmt.Errorf("rendering CV sections: %w", err)
		}
		artifacts = append(artifacts, Artifact{Path: filepath.Join(latexDir, sectionsFile), Data: bytes.Clone(buf.Bytes())})
		summary.Sections = len(src.Sections)
	}

	if bibliography {
		records := append(append([]types.Publication{}, src.Publications...), src.Grants...)
		if entries := bibtex.Entries(records); len(entries) > 0 {
			artifacts = append(artifacts, Artifact{Path: bibFile, Data: []byte(bibtex.Generate(records))})
			summary.BibEntries = len(entries)
		}
	}

	return artifacts, summary, nil
}
