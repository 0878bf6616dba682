// Package tzdb resolves IANA timezone identifiers into zones that can report
// the UTC offset in effect at any instant, including historical and DST rules.
//
// The tz database is embedded via time/tzdata, so resolution behaves the same
// on hosts without a zoneinfo directory.
package tzdb

import (
	"log/slog"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/hlop3z/tzconv/internal/alerr"
	"github.com/hlop3z/tzconv/internal/stamp"
)

// Zone is a resolved timezone rule set.
type Zone struct {
	name string
	loc  *time.Location
}

// Resolve looks up name in the tz database.
// The empty name and "Local" are rejected: both would silently pick a zone
// from the process environment instead of a database entry.
func Resolve(name string) (*Zone, error) {
	if name == "" || name == "Local" {
		return nil, unknownZone(name, nil)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, unknownZone(name, err)
	}

	slog.Debug("tzdb: resolved zone", "zone", name)
	return &Zone{name: name, loc: loc}, nil
}

// MustResolve is like Resolve but panics on error. For tests and constants.
func MustResolve(name string) *Zone {
	z, err := Resolve(name)
	if err != nil {
		panic(err)
	}
	return z
}

func unknownZone(name string, cause error) *alerr.Error {
	e := alerr.Wrap(alerr.ErrUnknownTimezone, cause, "unknown timezone").
		WithZone(name).
		WithNote("timezones are IANA tz database names such as Asia/Tokyo or Europe/London")
	if name != "" {
		e.WithHelp(alerr.SuggestSimilar(name, Names()))
	}
	e.WithHelp("run `tzconv zones` to list known timezones")
	return e
}

// Name returns the identifier the zone was resolved from.
func (z *Zone) Name() string {
	return z.name
}

// Location returns the underlying *time.Location.
func (z *Zone) Location() *time.Location {
	return z.loc
}

// OffsetAt returns the abbreviation and offset in seconds east of UTC in
// effect at instant t.
func (z *Zone) OffsetAt(t time.Time) (abbr string, offset int) {
	return t.In(z.loc).Zone()
}

// IsDST reports whether daylight saving time is in effect at instant t.
func (z *Zone) IsDST(t time.Time) bool {
	return t.In(z.loc).IsDST()
}

// probeWindow bounds how far from the wall clock offsets are sampled. Real
// offsets are within ±14h, so ±36h sees both sides of any transition that
// could affect the wall clock.
const (
	probeWindow = 36 * time.Hour
	probeStep   = 6 * time.Hour
)

// Candidates returns every instant whose wall clock in z equals n, in
// ascending order. An empty result means n falls in a gap (skipped by a
// forward transition); two results mean n is repeated by a backward one.
func (z *Zone) Candidates(n stamp.Naive) []time.Time {
	wall := n.In(time.UTC)

	offsets := make(map[int]struct{})
	for d := -probeWindow; d <= probeWindow; d += probeStep {
		_, off := wall.Add(d).In(z.loc).Zone()
		offsets[off] = struct{}{}
	}

	seen := make(map[int64]struct{})
	var out []time.Time
	for off := range offsets {
		inst := wall.Add(-time.Duration(off) * time.Second).In(z.loc)
		if stamp.FromTime(inst) != n {
			continue
		}
		if _, dup := seen[inst.Unix()]; dup {
			continue
		}
		seen[inst.Unix()] = struct{}{}
		out = append(out, inst)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Matches reports whether name contains filter, ignoring case.
func Matches(name, filter string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}
