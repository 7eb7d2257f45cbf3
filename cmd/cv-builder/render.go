// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cv-builder/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fetch cv.json and print the rendered publications page",
	Long: `Render fetches the generated document from render.url (see
cv-builder.yaml) and prints the publications page as HTML. A failed fetch is
reported in the page's status line, exactly as a visitor would see it.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	root, err := render.NewShell()
	if err != nil {
		return err
	}
	page, err := render.Mount(root, render.WithLogger(log))
	if err != nil {
		return err
	}
	// Fetch failures are already logged and shown in the status element.
	_ = page.Load(cmd.Context(), cfg.Render.URL)

	out, err := render.HTML(root)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
