//go:build mage

// Package main contains Mage build targets for cv-builder developer tooling.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/cv-builder/internal/bibtex"
	"github.com/pdiddy/cv-builder/internal/source"
	"github.com/pdiddy/cv-builder/pkg/types"
)

// projectDirs lists the working directories the build expects.
var projectDirs = []string{
	"data",
	"output/latex",
}

// Init creates the project directory structure.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "cv-builder"
	cmdPkg  = "./cmd/cv-builder"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// CV builds the binary and regenerates cv.json, the LaTeX fragments, and
// the bibliography.
func CV() error {
	mg.Deps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName))
}

// Serve regenerates the outputs and serves them locally.
func Serve() error {
	mg.SerialDeps(CV)
	return sh.RunV(filepath.Join(binDir, binName), "serve")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Stats prints what the source file holds and the size of each generated
// output file.
func Stats() error {
	defaults := types.DefaultBuildConfig()
	src, err := source.Load(defaults.Source)
	if err != nil {
		return err
	}

	var webOnly, pdfOnly int
	for _, p := range src.Publications {
		if p.PDFOnly {
			pdfOnly++
		} else {
			webOnly++
		}
	}
	records := append(append([]types.Publication{}, src.Publications...), src.Grants...)

	fmt.Printf("Source %s\n", defaults.Source)
	fmt.Printf("  publications (web and PDF): %d\n", webOnly)
	fmt.Printf("  publications (PDF only):    %d\n", pdfOnly)
	fmt.Printf("  grants:                     %d\n", len(src.Grants))
	fmt.Printf("  CV sections:                %d\n", len(src.Sections))
	fmt.Printf("  bibliography entries:       %d\n", len(bibtex.Entries(records)))

	fmt.Printf("Output %s\n", defaults.OutputDir)
	err = filepath.WalkDir(defaults.OutputDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(defaults.OutputDir, path)
		fmt.Printf("  %-28s %8d bytes\n", rel, info.Size())
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Println("  (not built yet; run mage cv)")
		return nil
	}
	return err
}
