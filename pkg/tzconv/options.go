package tzconv

import (
	"github.com/hlop3z/tzconv/internal/convert"
)

// Config holds all configuration options for the Converter.
type Config struct {
	// Ambiguous decides how a timestamp repeated by a backward DST transition
	// is bound: "reject", "earlier" or "later".
	// Default: reject
	Ambiguous string

	// Concurrency bounds parallel conversions in ConvertLines.
	// Default: GOMAXPROCS
	Concurrency int

	// Logger is used for logging operations.
	// If nil, no logging is performed.
	Logger Logger
}

// Logger is the interface for logging operations.
// It's compatible with the standard library's log.Logger.
type Logger interface {
	// Printf writes a formatted message to the log.
	Printf(format string, v ...any)
}

// Option is a functional option for configuring the Converter.
type Option func(*Config)

// WithAmbiguous sets the ambiguous local time policy.
//
// Values:
//   - reject: fail with ErrLocalTime (default)
//   - earlier: use the first occurrence
//   - later: use the second occurrence
func WithAmbiguous(policy string) Option {
	return func(c *Config) {
		c.Ambiguous = policy
	}
}

// WithConcurrency bounds the number of lines converted in parallel.
func WithConcurrency(n int) Option {
	return func(c *Config) {
		c.Concurrency = n
	}
}

// WithLogger sets the logger for operations.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func defaultConfig() *Config {
	return &Config{
		Ambiguous: string(convert.PolicyReject),
	}
}
