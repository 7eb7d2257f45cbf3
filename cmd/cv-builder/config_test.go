// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cv-builder/pkg/types"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultBuildConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `source: cv/source.yaml
output_dir: site/data
bibliography: false
serve:
  addr: ":9090"
  document_url: http://cv.example.org/cv.json
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv-builder.yaml"), []byte(content), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "cv/source.yaml", cfg.Source)
	assert.Equal(t, "site/data", cfg.OutputDir)
	assert.False(t, cfg.Bibliography)
	assert.Equal(t, ":9090", cfg.Serve.Addr)
	assert.Equal(t, "http://cv.example.org/cv.json", cfg.Serve.DocumentURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "http://localhost:8080/cv.json", cfg.Render.URL)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv-builder.yaml"), []byte("source: [unclosed\n"), 0o644))

	_, err := loadConfig(dir)
	assert.Error(t, err)
}
