// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LogConfig selects the diagnostic logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json" (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ServeConfig holds settings for the static file server.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// DocumentURL is where the served page fetches cv.json from. When
	// empty the page is rendered from cv.json in the output directory.
	DocumentURL string `json:"document_url" yaml:"document_url" mapstructure:"document_url"`
}

// RenderConfig holds settings for the renderer.
type RenderConfig struct {
	// URL is where the renderer fetches cv.json from
	// (default "http://localhost:8080/cv.json").
	URL string `json:"url" yaml:"url" mapstructure:"url"`
}

// BuildConfig groups every setting read from cv-builder.yaml.
type BuildConfig struct {
	// Source is the path to the structured source file.
	Source string `json:"source" yaml:"source" mapstructure:"source"`

	// OutputDir receives cv.json, latex/, and publications.bib.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Bibliography enables publications.bib generation.
	Bibliography bool `json:"bibliography" yaml:"bibliography" mapstructure:"bibliography"`

	Serve  ServeConfig  `json:"serve" yaml:"serve" mapstructure:"serve"`
	Render RenderConfig `json:"render" yaml:"render" mapstructure:"render"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultBuildConfig returns the settings used when no config file is present.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Source:       "data/cv_source.yaml",
		OutputDir:    "output",
		Bibliography: true,
		Serve:        ServeConfig{Addr: ":8080"},
		Render:       RenderConfig{URL: "http://localhost:8080/cv.json"},
		Log:          LogConfig{Level: "info", Format: "console"},
	}
}
