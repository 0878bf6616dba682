package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hlop3z/tzconv/internal/alerr"
)

// Config represents the tzconv.yaml configuration file.
type Config struct {
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Ambiguous string `yaml:"ambiguous"`
	Jobs      int    `yaml:"jobs"`
	LogLevel  string `yaml:"log_level"`
}

// Environment variables read by loadConfig.
const (
	envFrom      = "TZCONV_FROM"
	envTo        = "TZCONV_TO"
	envAmbiguous = "TZCONV_AMBIGUOUS"
	envJobs      = "TZCONV_JOBS"
	envLogLevel  = "TZCONV_LOG_LEVEL"
)

// loadConfig loads configuration from the config file and env vars.
// Precedence: CLI flags > env vars > config file > defaults.
// Flags are applied by the caller; a missing config file is not an error.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{
		Ambiguous: "reject",
		LogLevel:  "warn",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, alerr.Wrap(alerr.ErrConfig, err, "failed to parse config file").
					With("file", path)
			}
			cfg.From = expandEnvVars(cfg.From)
			cfg.To = expandEnvVars(cfg.To)
		case errors.Is(err, fs.ErrNotExist):
			// No config file; defaults and env only.
		default:
			return nil, alerr.Wrap(alerr.ErrConfig, err, "failed to read config file").
				With("file", path)
		}
	}

	if v := os.Getenv(envFrom); v != "" {
		cfg.From = v
	}
	if v := os.Getenv(envTo); v != "" {
		cfg.To = v
	}
	if v := os.Getenv(envAmbiguous); v != "" {
		cfg.Ambiguous = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envJobs); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, alerr.Wrapf(alerr.ErrConfig, err, "invalid %s", envJobs).WithInput(v)
		}
		cfg.Jobs = n
	}

	return cfg, nil
}

// expandEnvVars expands ${VAR} patterns in a string.
func expandEnvVars(s string) string {
	return os.Expand(s, os.Getenv)
}
