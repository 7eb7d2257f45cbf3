// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/cv-builder/internal/logging"
	"github.com/pdiddy/cv-builder/pkg/types"
)

// configName is the config file base name searched in the working directory.
const configName = "cv-builder"

// loadConfig reads ./cv-builder.yaml over the defaults. A missing file is
// not an error.
func loadConfig(dir string) (types.BuildConfig, error) {
	defaults := types.DefaultBuildConfig()

	v := viper.New()
	v.SetConfigName(configName)
	v.AddConfigPath(dir)

	v.SetDefault("source", defaults.Source)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("bibliography", defaults.Bibliography)
	v.SetDefault("serve.addr", defaults.Serve.Addr)
	v.SetDefault("serve.document_url", defaults.Serve.DocumentURL)
	v.SetDefault("render.url", defaults.Render.URL)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.BuildConfig{}, fmt.Errorf("reading config: %w", err)
		}
	} else {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}

	var cfg types.BuildConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.BuildConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// setup loads the config from the working directory and builds the logger.
func setup() (types.BuildConfig, *zap.Logger, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return cfg, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return cfg, nil, fmt.Errorf("creating logger: %w", err)
	}
	return cfg, log, nil
}
