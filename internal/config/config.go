// Package config loads default design parameters from a .env file and
// the environment. Command-line flags override every value.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gotbb/internal/nds"
)

// Environment variable names
const (
	EnvFcPerp       = "GOTBB_FC_PERP"
	EnvFireRating   = "GOTBB_FIRE_RATING"
	EnvLogLevel     = "GOTBB_LOG_LEVEL"
	EnvReportAuthor = "GOTBB_REPORT_AUTHOR"
	EnvProject      = "GOTBB_PROJECT"
)

// Defaults used when neither the environment nor a flag sets a value
const (
	DefaultFcPerp   = 430.0 // psi
	DefaultLogLevel = "info"
)

// Config holds the defaults applied to CLI flags
type Config struct {
	FcPerp       float64
	FireRating   nds.FireRating
	LogLevel     string
	ReportAuthor string
	Project      string
}

// Load reads envFile (when it exists) into the process environment and
// builds a Config. Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		FcPerp:       DefaultFcPerp,
		FireRating:   nds.ZeroHour,
		LogLevel:     DefaultLogLevel,
		ReportAuthor: os.Getenv(EnvReportAuthor),
		Project:      os.Getenv(EnvProject),
	}

	if v := strings.TrimSpace(os.Getenv(EnvFcPerp)); v != "" {
		fc, err := strconv.ParseFloat(v, 64)
		if err != nil || fc <= 0 {
			return nil, fmt.Errorf("%s: invalid stress %q", EnvFcPerp, v)
		}
		cfg.FcPerp = fc
	}

	if v := strings.TrimSpace(os.Getenv(EnvFireRating)); v != "" {
		rating, err := nds.ParseFireRating(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvFireRating, err)
		}
		cfg.FireRating = rating
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
