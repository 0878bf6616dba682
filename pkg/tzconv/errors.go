package tzconv

import (
	"errors"
	"fmt"

	"github.com/hlop3z/tzconv/internal/alerr"
)

// Sentinel errors for the failure kinds of a conversion.
// Use errors.Is() to check for these errors.
var (
	// ErrParse is returned when the timestamp does not match
	// YYYY/MM/DD HH:MM:SS or is not a valid calendar date-time.
	ErrParse = errors.New("tzconv: invalid timestamp")

	// ErrOutOfRange is returned when the converted timestamp falls outside
	// years 0000 to 9999.
	ErrOutOfRange = errors.New("tzconv: timestamp out of range")

	// ErrUnknownTimezone is returned when a zone identifier is not in the tz database.
	ErrUnknownTimezone = errors.New("tzconv: unknown timezone")

	// ErrLocalTime is returned when the timestamp does not exist in the source
	// zone (DST gap) or, under the reject policy, exists twice (DST overlap).
	ErrLocalTime = errors.New("tzconv: nonexistent or ambiguous local time")

	// ErrInvalidPolicy is returned when the ambiguous time policy is not recognized.
	ErrInvalidPolicy = errors.New("tzconv: invalid ambiguous time policy")
)

// ConversionError provides detailed information about a failed conversion.
type ConversionError struct {
	// Code is the stable error code (e.g., "E2001").
	Code string

	// Input is the offending timestamp or policy text, if any.
	Input string

	// Zone is the zone identifier involved, if any.
	Zone string

	// Line is the 1-based input line for ConvertLines, or 0.
	Line int

	// Cause is the underlying structured error.
	Cause error
}

// Error returns a formatted error message.
func (e *ConversionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("tzconv: line %d: %v", e.Line, e.Cause)
	}
	return fmt.Sprintf("tzconv: %v", e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches one of the sentinel errors.
func (e *ConversionError) Is(target error) bool {
	switch alerr.Code(e.Code) {
	case alerr.ErrParse:
		return target == ErrParse
	case alerr.ErrOutOfRange:
		return target == ErrOutOfRange
	case alerr.ErrUnknownTimezone:
		return target == ErrUnknownTimezone
	case alerr.ErrNonexistentLocalTime, alerr.ErrAmbiguousLocalTime:
		return target == ErrLocalTime
	case alerr.ErrInvalidPolicy:
		return target == ErrInvalidPolicy
	}
	return false
}

// wrapError converts internal errors into ConversionErrors. Joined errors
// stay joined.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	all := alerr.All(err)
	if len(all) == 0 {
		return err
	}

	wrapped := make([]error, len(all))
	for i, e := range all {
		ctx := e.GetContext()
		ce := &ConversionError{Code: string(e.GetCode()), Cause: e}
		ce.Input, _ = ctx["input"].(string)
		ce.Zone, _ = ctx["zone"].(string)
		ce.Line, _ = ctx["line"].(int)
		wrapped[i] = ce
	}
	if len(wrapped) == 1 {
		return wrapped[0]
	}
	return errors.Join(wrapped...)
}
