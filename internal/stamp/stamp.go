// Package stamp parses and formats the fixed "YYYY/MM/DD HH:MM:SS" timestamp
// text used by tzconv. Timestamps carry no zone: binding to a zone happens in
// package convert.
package stamp

import (
	"time"

	"github.com/hlop3z/tzconv/internal/alerr"
)

// Layout is the single pattern used for both parsing and formatting.
const Layout = "2006/01/02 15:04:05"

// Years representable in Layout.
const (
	MinYear = 0
	MaxYear = 9999
)

// Naive is a calendar date-time without a zone or offset.
type Naive struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// Parse reads s as a naive timestamp. Text that does not match Layout, encodes
// an impossible date (e.g. February 30) or would not format back to exactly s
// is rejected with an alerr.ErrParse error.
func Parse(s string) (Naive, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Naive{}, alerr.Wrap(alerr.ErrParse, err, "invalid timestamp").
			WithInput(s).
			WithHelp("expected format YYYY/MM/DD HH:MM:SS, e.g. 2019/12/07 19:31:28")
	}

	n := FromTime(t)
	// time.Parse accepts an unpadded hour; the fixed format does not.
	if n.String() != s {
		return Naive{}, alerr.New(alerr.ErrParse, "invalid timestamp").
			WithInput(s).
			WithNote("every field must be zero-padded to its fixed width").
			WithHelp("expected format YYYY/MM/DD HH:MM:SS, e.g. 2019/12/07 09:31:28")
	}
	return n, nil
}

// Format renders n using Layout.
func Format(n Naive) string {
	return n.In(time.UTC).Format(Layout)
}

// InRange reports whether n's year fits the four digits of Layout.
func (n Naive) InRange() bool {
	return n.Year >= MinYear && n.Year <= MaxYear
}

// String implements fmt.Stringer.
func (n Naive) String() string {
	return Format(n)
}

// FromTime takes the wall-clock fields of t in t's own location.
func FromTime(t time.Time) Naive {
	return Naive{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// In builds the time with n's wall clock in loc. Where the wall clock is
// skipped or repeated in loc the result is whatever time.Date picks; callers
// that care use tzdb.Zone.Candidates instead.
func (n Naive) In(loc *time.Location) time.Time {
	return time.Date(n.Year, n.Month, n.Day, n.Hour, n.Minute, n.Second, 0, loc)
}

// Equal reports whether both timestamps have the same fields.
func (n Naive) Equal(other Naive) bool {
	return n == other
}
