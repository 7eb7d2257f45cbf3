// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cv-builder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the output directory and the rendered publications page",
	Long: `Serve exposes the output directory over plain HTTP (cv.json, latex/, the
bibliography) and renders the publications page at /. The page is rendered
from the output directory's cv.json, or fetched from serve.document_url when
cv-builder.yaml sets it. The listen address is serve.addr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	handler := server.NewHandler(server.Config{
		OutputDir:   cfg.OutputDir,
		DocumentURL: cfg.Serve.DocumentURL,
	}, log)
	return server.ListenAndServe(ctx, cfg.Serve.Addr, handler, log)
}
