// Package tzconv provides the public API for converting naive timestamps
// between IANA timezones.
//
// Usage:
//
//	c, err := tzconv.New(tzconv.WithAmbiguous("earlier"))
//	if err != nil {
//		return err
//	}
//	out, err := c.Convert("2019/12/07 19:31:28", "Asia/Tokyo", "Europe/London")
package tzconv

import (
	"context"
	"io"

	"github.com/hlop3z/tzconv/internal/batch"
	"github.com/hlop3z/tzconv/internal/convert"
	"github.com/hlop3z/tzconv/internal/stamp"
	"github.com/hlop3z/tzconv/internal/tzdb"
)

// Layout is the timestamp format accepted and produced by the Converter,
// expressed as a Go time layout.
const Layout = stamp.Layout

// Converter converts timestamps between zones. It holds no mutable state and
// is safe for concurrent use.
type Converter struct {
	config *Config
	policy convert.Policy
}

// New creates a Converter with the given options.
func New(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	policy, err := convert.ParsePolicy(cfg.Ambiguous)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Converter{config: cfg, policy: policy}, nil
}

// Config returns the converter's configuration.
func (c *Converter) Config() Config {
	return *c.config
}

// Convert reads timestamp as wall-clock time in zone from and returns the
// wall-clock time of the same instant in zone to.
func (c *Converter) Convert(timestamp, from, to string) (string, error) {
	out, err := convert.Convert(timestamp, from, to, convert.WithPolicy(c.policy))
	if err != nil {
		c.logf("convert %q from %s to %s: %v", timestamp, from, to, err)
		return "", wrapError(err)
	}
	return out, nil
}

// ConvertLines converts one timestamp per line of r and writes the results
// to w in input order. It returns the number of lines written.
func (c *Converter) ConvertLines(ctx context.Context, r io.Reader, w io.Writer, from, to string) (int, error) {
	n, err := batch.Run(ctx, r, w, batch.Config{
		From:        from,
		To:          to,
		Concurrency: c.config.Concurrency,
		Options:     []convert.Option{convert.WithPolicy(c.policy)},
	})
	if err != nil {
		c.logf("convert lines from %s to %s: %v", from, to, err)
		return n, wrapError(err)
	}
	c.logf("converted %d lines from %s to %s", n, from, to)
	return n, nil
}

// Zones returns the known zone identifiers containing filter, ignoring case.
func (c *Converter) Zones(filter string) []string {
	return tzdb.Filter(tzdb.Names(), filter)
}

func (c *Converter) logf(format string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Printf(format, args...)
	}
}
