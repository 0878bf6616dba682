package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/hlop3z/tzconv/internal/alerr"
)

func init() {
	// Force plain mode in tests so style functions return raw text (no ANSI codes).
	SetDefault(&Config{Mode: ModePlain})
}

func TestFormatError_UnknownTimezone(t *testing.T) {
	err := alerr.New(alerr.ErrUnknownTimezone, "unknown timezone").
		WithZone("Asia/Tokio").
		With("role", "destination").
		WithNote("timezones are IANA tz database names").
		WithHelp("did you mean 'Asia/Tokyo'?")

	output := FormatError(err)

	checks := []string{
		"error[E2001]: unknown timezone",
		"| zone: Asia/Tokio",
		"| role: destination",
		"note: timezones are IANA tz database names",
		"help: did you mean 'Asia/Tokyo'?",
	}
	for _, want := range checks {
		if !strings.Contains(output, want) {
			t.Errorf("FormatError output missing %q\ngot:\n%s", want, output)
		}
	}
}

func TestFormatError_ContextOrder(t *testing.T) {
	err := alerr.New(alerr.ErrParse, "invalid timestamp").
		With("extra", "x").
		WithZone("UTC").
		WithInput("bogus").
		WithLine(4)

	output := FormatError(err)

	order := []string{"line: 4", "input: bogus", "zone: UTC", "extra: x"}
	last := -1
	for _, want := range order {
		idx := strings.Index(output, want)
		if idx == -1 {
			t.Fatalf("missing %q in:\n%s", want, output)
		}
		if idx < last {
			t.Errorf("%q out of order in:\n%s", want, output)
		}
		last = idx
	}
}

func TestFormatError_ListContext(t *testing.T) {
	err := alerr.New(alerr.ErrAmbiguousLocalTime, "local time is ambiguous").
		With("candidates", []string{"2019-11-03T01:30:00-05:00 (CDT)", "2019-11-03T01:30:00-06:00 (CST)"})

	output := FormatError(err)
	if !strings.Contains(output, "|   2019-11-03T01:30:00-05:00 (CDT)") {
		t.Errorf("list items should render one per line, got:\n%s", output)
	}
}

func TestFormatError_WithCause(t *testing.T) {
	err := alerr.Wrap(alerr.ErrParse, errors.New("day out of range"), "invalid timestamp")

	output := FormatError(err)
	if !strings.Contains(output, "cause: day out of range") {
		t.Errorf("missing cause in:\n%s", output)
	}
}

func TestFormatError_Joined(t *testing.T) {
	err := errors.Join(
		alerr.New(alerr.ErrUnknownTimezone, "unknown timezone").WithZone("Hoge/Fuga"),
		alerr.New(alerr.ErrUnknownTimezone, "unknown timezone").WithZone("Foo/Bar"),
	)

	output := FormatError(err)
	if n := strings.Count(output, "error[E2001]"); n != 2 {
		t.Errorf("expected 2 error blocks, got %d:\n%s", n, output)
	}
	if !strings.Contains(output, "Hoge/Fuga") || !strings.Contains(output, "Foo/Bar") {
		t.Errorf("both zones should be shown:\n%s", output)
	}
}

func TestFormatError_Generic(t *testing.T) {
	output := FormatError(errors.New("something broke"))
	if output != "error: something broke\n" {
		t.Errorf("FormatError() = %q", output)
	}
}

func TestFormatError_Nil(t *testing.T) {
	if got := FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatNote("n"); got != "note: n\n" {
		t.Errorf("FormatNote() = %q", got)
	}
	if got := FormatHelp("h"); got != "help: h\n" {
		t.Errorf("FormatHelp() = %q", got)
	}
	if got := FormatWarning("w"); got != "warning: w\n" {
		t.Errorf("FormatWarning() = %q", got)
	}
}
