// Package cli provides Cargo/rustc-style CLI output formatting for tzconv.
// It handles terminal detection for both ends of the pipe, colored output and
// error formatting.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// OutputMode determines how output is formatted.
type OutputMode int

const (
	// ModeTTY enables rich colored output for interactive terminals.
	ModeTTY OutputMode = iota
	// ModePlain outputs plain text without colors (for pipes/CI).
	ModePlain
)

// Config holds CLI output configuration.
// Configuration is auto-detected; users don't configure this directly.
type Config struct {
	Mode OutputMode
}

// DefaultConfig returns the auto-detected configuration.
// Rules:
//   - If stderr is TTY and NO_COLOR not set -> ModeTTY
//   - If stderr is not TTY or NO_COLOR set -> ModePlain
//
// Stderr decides because converted timestamps on stdout are never styled;
// only diagnostics and help are.
func DefaultConfig() *Config {
	mode := ModePlain

	if IsTerminal(os.Stderr) {
		mode = ModeTTY
	}

	// Respect NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		mode = ModePlain
	}

	// Also respect TERM=dumb
	if os.Getenv("TERM") == "dumb" {
		mode = ModePlain
	}

	return &Config{Mode: mode}
}

// NewConfigWithMode creates a config with a specific output mode.
// Used for testing.
func NewConfigWithMode(mode OutputMode) *Config {
	cfg := DefaultConfig()
	cfg.Mode = mode
	return cfg
}

// IsTTY returns true if running in interactive terminal mode.
func (c *Config) IsTTY() bool {
	return c.Mode == ModeTTY
}

// IsPlain returns true if running in plain text mode.
func (c *Config) IsPlain() bool {
	return c.Mode == ModePlain
}

// Global default config, initialized lazily.
var defaultCfg *Config

// Default returns the global default configuration.
func Default() *Config {
	if defaultCfg == nil {
		defaultCfg = DefaultConfig()
	}
	return defaultCfg
}

// SetDefault sets the global default configuration.
func SetDefault(cfg *Config) {
	defaultCfg = cfg
}

// EnableColors returns true if colors should be used.
func EnableColors() bool {
	return Default().IsTTY()
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdinIsPiped reports whether stdin is redirected from a pipe or file
// rather than attached to a terminal.
func StdinIsPiped() bool {
	return !IsTerminal(os.Stdin)
}
