// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/cv-builder/internal/build"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate cv.json, LaTeX fragments, and the bibliography",
	Long: `Build loads and validates the source file, renders every output in memory,
and then writes the output directory. It is what cv-builder runs when no
subcommand is given.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	opts := build.Options{
		Source:       cfg.Source,
		OutputDir:    cfg.OutputDir,
		Bibliography: cfg.Bibliography,
	}
	_, err = build.Run(opts, cmd.OutOrStdout(), log)
	return err
}
