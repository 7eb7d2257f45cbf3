// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server serves the generated output directory over plain HTTP
// and a server-rendered publications page built from it.
package server

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pdiddy/cv-builder/internal/render"
)

const documentFile = "cv.json"

// Config configures the handler.
type Config struct {
	// OutputDir is the directory served as static files (cv.json, latex/, ...).
	OutputDir string

	// DocumentURL is where the page handler fetches cv.json from. When
	// empty, the handler reads cv.json from OutputDir.
	DocumentURL string

	// Client is used for the page fetch. Defaults to http.DefaultClient.
	Client *http.Client
}

// NewHandler returns the router: GET / renders the publications page and
// every other path is served from cfg.OutputDir.
func NewHandler(cfg Config, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", pageHandler(cfg, log))
	r.Handle("/*", http.FileServer(http.Dir(cfg.OutputDir)))
	return r
}

// pageHandler renders a fresh page per request. A failed fetch still
// yields a page; the renderer puts the failure in the status element.
func pageHandler(cfg Config, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		root, err := render.NewShell()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		page, err := render.Mount(root, render.WithClient(cfg.Client), render.WithLogger(log))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if cfg.DocumentURL != "" {
			_ = page.Load(req.Context(), cfg.DocumentURL)
		} else {
			_ = page.LoadFile(filepath.Join(cfg.OutputDir, documentFile))
		}

		out, err := render.HTML(root)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(out)); err != nil {
			log.Debug("writing page failed", zap.Error(err))
		}
	}
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, log *zap.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errc := make(chan error, 1)
	go func() {
		log.Info("serving", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}
