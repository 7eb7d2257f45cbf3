// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/cv-builder/internal/render"
)

const cvJSON = `{
  "publications": [
    {"subtype": "journal", "title": "Served Paper", "authors": "", "venue": "", "links": []}
  ],
  "web": {
    "display_subtypes": ["journal"],
    "subtype_labels": {"journal": "Journal Articles"},
    "pdf_link": "cv.pdf"
  }
}
`

func writeOutput(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv.json"), []byte(cvJSON), 0o644))
	return dir
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServesStaticDocument(t *testing.T) {
	ts := httptest.NewServer(NewHandler(Config{OutputDir: writeOutput(t)}, zaptest.NewLogger(t)))
	defer ts.Close()

	status, body := get(t, ts.URL+"/cv.json")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, cvJSON, body)
}

func TestPageRendersFromOwnDocument(t *testing.T) {
	ts := httptest.NewServer(NewHandler(Config{OutputDir: writeOutput(t)}, zaptest.NewLogger(t)))
	defer ts.Close()

	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Journal Articles")
	assert.Contains(t, body, "Served Paper")
	assert.Contains(t, body, `href="cv.pdf"`)
}

func TestPageShowsStatusWhenDocumentMissing(t *testing.T) {
	ts := httptest.NewServer(NewHandler(Config{OutputDir: t.TempDir()}, zaptest.NewLogger(t)))
	defer ts.Close()

	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, render.LoadFailedMessage)
	assert.False(t, strings.Contains(body, "pub-section"))
}

func TestPageIgnoresRequestHost(t *testing.T) {
	var hits atomic.Int32
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		io.WriteString(w, cvJSON)
	}))
	defer other.Close()

	handler := NewHandler(Config{OutputDir: t.TempDir()}, zaptest.NewLogger(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = strings.TrimPrefix(other.URL, "http://")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), render.LoadFailedMessage)
	assert.Zero(t, hits.Load(), "page fetched a document from the request's Host")
}

func TestPageFetchesConfiguredURL(t *testing.T) {
	var path atomic.Value
	doc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path.Store(r.URL.Path)
		io.WriteString(w, cvJSON)
	}))
	defer doc.Close()

	cfg := Config{OutputDir: t.TempDir(), DocumentURL: doc.URL + "/data/cv.json"}
	ts := httptest.NewServer(NewHandler(cfg, zaptest.NewLogger(t)))
	defer ts.Close()

	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Served Paper")
	assert.Equal(t, "/data/cv.json", path.Load())
}

type failingWriter struct {
	header http.Header
}

func (w *failingWriter) Header() http.Header { return w.header }
func (w *failingWriter) WriteHeader(int) {}
func (w *failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestPageLogsWriteFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	handler := NewHandler(Config{OutputDir: writeOutput(t)}, zap.New(core))

	handler.ServeHTTP(&failingWriter{header: http.Header{}}, httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.FilterMessage("writing page failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
}
