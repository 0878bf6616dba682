// Package convert reinterprets a naive timestamp from one timezone into the
// wall-clock time of another.
//
// Usage:
//
//	out, err := convert.Convert("2019/12/07 19:31:28", "Asia/Tokyo", "Europe/London")
//	// out == "2019/12/07 10:31:28"
package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hlop3z/tzconv/internal/alerr"
	"github.com/hlop3z/tzconv/internal/stamp"
	"github.com/hlop3z/tzconv/internal/tzdb"
)

// Option configures a conversion.
type Option func(*options)

type options struct {
	policy Policy
}

// WithPolicy selects how ambiguous local times are bound.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

func buildOptions(opts []Option) options {
	o := options{policy: PolicyReject}
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy == "" {
		o.policy = PolicyReject
	}
	return o
}

// Convert reads timestamp as wall-clock time in zone from and returns the
// wall-clock time of the same instant in zone to, both in stamp.Layout.
//
// Errors carry an alerr code: ErrUnknownTimezone for either zone (both are
// reported when both are unknown), ErrParse for the timestamp,
// ErrNonexistentLocalTime or ErrAmbiguousLocalTime when the timestamp does not
// name exactly one instant in the source zone, and ErrOutOfRange when the
// result falls outside the years Layout can write.
func Convert(timestamp, from, to string, opts ...Option) (string, error) {
	src, dst, err := resolvePair(from, to)
	if err != nil {
		return "", err
	}

	n, err := stamp.Parse(timestamp)
	if err != nil {
		return "", err
	}

	instant, err := Bind(n, src, opts...)
	if err != nil {
		return "", err
	}

	local := stamp.FromTime(instant.In(dst.Location()))
	if !local.InRange() {
		return "", alerr.New(alerr.ErrOutOfRange, "converted timestamp is out of range").
			WithInput(timestamp).
			WithZone(to).
			With("year", local.Year).
			WithNote(fmt.Sprintf("timestamps have a four-digit year, %04d to %04d", stamp.MinYear, stamp.MaxYear))
	}

	out := stamp.Format(local)
	slog.Debug("convert: converted timestamp",
		"input", timestamp,
		"from", from,
		"to", to,
		"instant", instant.UTC().Format(time.RFC3339),
		"output", out)
	return out, nil
}

// Instant reads timestamp as wall-clock time in zone from and returns the
// absolute instant it names.
func Instant(timestamp, from string, opts ...Option) (time.Time, error) {
	src, err := tzdb.Resolve(from)
	if err != nil {
		return time.Time{}, err
	}
	n, err := stamp.Parse(timestamp)
	if err != nil {
		return time.Time{}, err
	}
	return Bind(n, src, opts...)
}

// resolvePair resolves both zones and reports every failure, so an unknown
// destination is not hidden behind an unknown source.
func resolvePair(from, to string) (*tzdb.Zone, *tzdb.Zone, error) {
	src, srcErr := tzdb.Resolve(from)
	tagRole(srcErr, "source")
	dst, dstErr := tzdb.Resolve(to)
	tagRole(dstErr, "destination")

	switch {
	case srcErr != nil && dstErr != nil:
		return nil, nil, errors.Join(srcErr, dstErr)
	case srcErr != nil:
		return nil, nil, srcErr
	case dstErr != nil:
		return nil, nil, dstErr
	}
	return src, dst, nil
}

func tagRole(err error, role string) {
	var e *alerr.Error
	if errors.As(err, &e) {
		e.With("role", role)
	}
}

// Bind returns the instant n names in zone z, using the rules in effect on
// that date. A timestamp skipped by a DST transition is always an error; a
// repeated one is resolved by the configured Policy.
func Bind(n stamp.Naive, z *tzdb.Zone, opts ...Option) (time.Time, error) {
	o := buildOptions(opts)
	candidates := z.Candidates(n)

	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return time.Time{}, alerr.New(alerr.ErrNonexistentLocalTime, "local time does not exist").
			WithInput(n.String()).
			WithZone(z.Name()).
			WithNote("the clocks skip over this time at a daylight saving transition")
	}

	first, last := candidates[0], candidates[len(candidates)-1]
	switch o.policy {
	case PolicyEarlier:
		slog.Debug("convert: ambiguous local time, using earlier", "input", n.String(), "zone", z.Name())
		return first, nil
	case PolicyLater:
		slog.Debug("convert: ambiguous local time, using later", "input", n.String(), "zone", z.Name())
		return last, nil
	}

	firstAbbr, _ := z.OffsetAt(first)
	lastAbbr, _ := z.OffsetAt(last)
	return time.Time{}, alerr.New(alerr.ErrAmbiguousLocalTime, "local time is ambiguous").
		WithInput(n.String()).
		WithZone(z.Name()).
		With("candidates", []string{
			first.Format(time.RFC3339) + " (" + firstAbbr + ")",
			last.Format(time.RFC3339) + " (" + lastAbbr + ")",
		}).
		WithNote("the clocks repeat this time at a daylight saving transition").
		WithHelp("set the ambiguous time policy to earlier or later to pick one")
}
