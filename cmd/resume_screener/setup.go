package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/fields"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/skills"
)

// defaultConfig holds the built-in defaults applied under config file and
// flag values.
var defaultConfig = config.Config{
	UploadDir:    "uploads",
	NameStrategy: "first-line",
	Port:         8080,
}

// loadConfig resolves the effective configuration: config file values (when
// --config is set) merged over built-in defaults, then validated. The
// database URL additionally falls back to the DATABASE_URL environment
// variable.
func loadConfig(configPath string) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(defaultConfig)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newParser builds the parsing pipeline from configuration: vocabulary file
// or built-in default, and the configured name strategy.
func newParser(cfg config.Config) (*pipeline.Parser, error) {
	opts := []pipeline.Option{}

	if cfg.VocabularyPath != "" {
		vocab, err := skills.Load(cfg.VocabularyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		opts = append(opts, pipeline.WithVocabulary(vocab))
	}

	if cfg.NameStrategy == "entity" {
		opts = append(opts, pipeline.WithNameStrategy(&fields.EntityNameStrategy{}))
	}

	return pipeline.NewParser(opts...), nil
}
