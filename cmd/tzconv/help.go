package main

import (
	"fmt"
	"io"

	"github.com/hlop3z/tzconv/internal/cli"
)

// HelpMessage represents a structured help message for error conditions.
type HelpMessage struct {
	Title string   // Error title (e.g., "Missing timestamp")
	Lines []string // Help content lines
}

// helpMessages contains data-driven help messages for usage errors.
var helpMessages = map[string]HelpMessage{
	"missing_time": {
		Title: "Missing timestamp",
		Lines: []string{
			"Pass the timestamp as an argument, or pipe one per line on stdin:",
			"",
			"  tzconv \"2019/12/07 19:31:28\" -f Asia/Tokyo -t Europe/London",
			"  cat times.txt | tzconv -f Asia/Tokyo -t Europe/London",
			"  tzconv - -f Asia/Tokyo -t Europe/London < times.txt",
		},
	},
	"missing_zone": {
		Title: "Missing timezone",
		Lines: []string{
			"Both the source and destination timezones are required.",
			"",
			"Set them with ONE of:",
			"  1. Flags:       -f Asia/Tokyo -t Europe/London",
			"  2. Environment: TZCONV_FROM=Asia/Tokyo TZCONV_TO=Europe/London",
			"  3. tzconv.yaml: from: Asia/Tokyo / to: Europe/London",
			"",
			"List timezones with:",
			"  tzconv zones [filter]",
		},
	},
}

// printHelp prints a help message by key.
func printHelp(w io.Writer, key string) {
	msg, ok := helpMessages[key]
	if !ok {
		fmt.Fprintf(w, "Error: Unknown help message key: %s\n", key)
		return
	}

	fmt.Fprintln(w, cli.Error("error")+": "+msg.Title)
	fmt.Fprintln(w)
	for _, line := range msg.Lines {
		fmt.Fprintln(w, line)
	}
}

// usageFlags lists the flags shown in the help screen.
var usageFlags = []struct{ flag, desc string }{
	{"-f, --fromtz ZONE", "Timezone the input is written in (e.g. Asia/Tokyo)"},
	{"-t, --totz ZONE", "Timezone to convert to (e.g. Europe/London)"},
	{"    --ambiguous POLICY", "Repeated local times: reject, earlier or later (default reject)"},
	{"-j, --jobs N", "Lines converted in parallel when reading stdin"},
	{"-c, --config FILE", "Path to config file (default: tzconv.yaml)"},
	{"    --verbose", "Log debug information to stderr"},
	{"-h, --help", "Show help information"},
	{"    --version", "Show version information"},
}

// renderUsage writes the styled help screen for the root command.
func renderUsage(w io.Writer) {
	fmt.Fprintln(w, cli.Title("tzconv")+" - convert timestamps between timezones")
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Header("Usage:"))
	fmt.Fprintln(w, "  tzconv [TIME] -f ZONE -t ZONE")
	fmt.Fprintln(w, "  tzconv zones [FILTER]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Header("Arguments:"))
	fmt.Fprintln(w, "  "+cli.Highlight("TIME")+"    "+cli.Dim("YYYY/MM/DD HH:MM:SS, or - to read one per line from stdin"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Header("Flags:"))

	width := 0
	for _, f := range usageFlags {
		width = max(width, len(f.flag))
	}
	for _, f := range usageFlags {
		fmt.Fprintf(w, "  %s  %s\n", cli.Highlight(fmt.Sprintf("%-*s", width, f.flag)), cli.Dim(f.desc))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.Header("Examples:"))
	fmt.Fprintln(w, "  tzconv \"2019/12/07 19:31:28\" -f Asia/Tokyo -t Europe/London")
	fmt.Fprintln(w, "  tzconv zones america")
}
