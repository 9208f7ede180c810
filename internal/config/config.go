// Package config loads run defaults from the environment, optionally seeded
// from a .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunables shared by the CLI commands. Flag values always
// override these.
type Config struct {
	// CouplingTolerance is the coordinate-equality tolerance for rigid
	// link classification.
	CouplingTolerance float64

	// MergeTolerance is the node zip distance for mesh cleaning.
	MergeTolerance float64

	// OutputDir is where diagrams, reports, and exports are written.
	OutputDir string

	// Project and Author appear in report headers.
	Project string
	Author  string
}

// Load reads GOJOINT_* environment variables, after sourcing .env if one
// exists. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		CouplingTolerance: 1e-6,
		MergeTolerance:    1e-5,
		OutputDir:         ".",
		Project:           os.Getenv("GOJOINT_PROJECT"),
		Author:            os.Getenv("GOJOINT_AUTHOR"),
	}

	if dir := os.Getenv("GOJOINT_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}
	var err error
	if cfg.CouplingTolerance, err = envFloat("GOJOINT_TOLERANCE", cfg.CouplingTolerance); err != nil {
		return nil, err
	}
	if cfg.MergeTolerance, err = envFloat("GOJOINT_MERGE_TOLERANCE", cfg.MergeTolerance); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %g", key, v)
	}
	return v, nil
}
