package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hlop3z/tzconv/internal/alerr"
)

// contextOrder lists context keys shown before any others, in this order.
var contextOrder = []string{"line", "input", "zone", "role"}

// FormatError formats an error for CLI display in Cargo/rustc style.
// Structured errors render with their code, context, notes and helps; errors
// joined with errors.Join render one block each.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	all := alerr.All(err)
	if len(all) == 0 {
		return formatGenericError(err)
	}

	blocks := make([]string, len(all))
	for i, e := range all {
		blocks[i] = formatTzconvError(e)
	}
	return strings.Join(blocks, "\n")
}

// formatTzconvError formats an *alerr.Error:
//
//	error[E2001]: unknown timezone
//	   |
//	   | zone: Hoge/Fuga
//	   |
//	note: timezones are IANA tz database names
//	help: run `tzconv zones` to list known timezones
func formatTzconvError(err *alerr.Error) string {
	var b strings.Builder

	b.WriteString(Error("error"))
	b.WriteString("[")
	b.WriteString(Code(string(err.GetCode())))
	b.WriteString("]: ")
	b.WriteString(err.GetMessage())
	b.WriteString("\n")

	details := contextDetails(err.GetContext())
	if len(details) > 0 {
		b.WriteString("   ")
		b.WriteString(Pipe())
		b.WriteString("\n")
		for _, detail := range details {
			b.WriteString("   ")
			b.WriteString(Pipe())
			b.WriteString(" ")
			b.WriteString(detail)
			b.WriteString("\n")
		}
	}

	if cause := err.GetCause(); cause != nil {
		b.WriteString("   ")
		b.WriteString(Pipe())
		b.WriteString("\n")
		b.WriteString(Note("cause"))
		b.WriteString(": ")
		b.WriteString(cause.Error())
		b.WriteString("\n")
	}

	for i, note := range err.Notes() {
		if i == 0 && err.GetCause() == nil {
			b.WriteString("   ")
			b.WriteString(Pipe())
			b.WriteString("\n")
		}
		b.WriteString(FormatNote(note))
	}

	for _, help := range err.Helps() {
		b.WriteString(FormatHelp(help))
	}

	return b.String()
}

// contextDetails renders context entries as "key: value" lines, known keys
// first, the rest sorted. Slices render one element per line.
func contextDetails(ctx map[string]any) []string {
	skip := map[string]bool{"notes": true, "helps": true}

	var keys []string
	for _, k := range contextOrder {
		if _, ok := ctx[k]; ok {
			keys = append(keys, k)
			skip[k] = true
		}
	}
	var rest []string
	for k := range ctx {
		if !skip[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	var details []string
	for _, k := range keys {
		if list, ok := ctx[k].([]string); ok {
			details = append(details, Dim(k)+":")
			for _, item := range list {
				details = append(details, "  "+item)
			}
			continue
		}
		details = append(details, fmt.Sprintf("%s: %v", Dim(k), ctx[k]))
	}
	return details
}

// formatGenericError formats a non-alerr error.
func formatGenericError(err error) string {
	var b strings.Builder
	b.WriteString(Error("error"))
	b.WriteString(": ")
	b.WriteString(err.Error())
	b.WriteString("\n")
	return b.String()
}

// FormatWarning formats a warning message.
func FormatWarning(msg string) string {
	return Warning("warning") + ": " + msg + "\n"
}

// FormatNote formats a note message.
func FormatNote(msg string) string {
	return Note("note") + ": " + msg + "\n"
}

// FormatHelp formats a help message.
func FormatHelp(msg string) string {
	return Help("help") + ": " + msg + "\n"
}
