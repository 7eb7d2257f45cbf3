// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cv-builder CLI.
// Running cv-builder with no arguments builds cv.json, the LaTeX
// fragments, and the bibliography from the source file.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cv-builder CLI. Without a
// subcommand it runs the build.
var rootCmd = &cobra.Command{
	Use:   "cv-builder",
	Short: "Build the web and PDF curriculum vitae outputs",
	Long: `cv-builder reads the structured CV source file (data/cv_source.yaml by
default) and writes output/cv.json for the web page, LaTeX fragments under
output/latex/ for the PDF curriculum vitae, and output/publications.bib.

Settings are read from ./cv-builder.yaml when present. The build stops with a
non-zero exit code on any load or validation error and writes nothing.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBuild,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
