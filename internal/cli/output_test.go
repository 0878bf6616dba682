package cli

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	table := NewTable("ZONE", "OFFSET", "ABBR")
	table.AddRow("Asia/Tokyo", "+09:00", "JST")
	table.AddRow("UTC", "+00:00")

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}

	lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got:\n%s", table.String())
	}
	if !strings.HasPrefix(lines[0], "ZONE        OFFSET") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "Asia/Tokyo  +09:00  JST" {
		t.Errorf("row = %q", lines[2])
	}
	if strings.HasSuffix(lines[3], " ") {
		t.Errorf("row has trailing spaces: %q", lines[3])
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	if got := NewTable().String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1, "zone", "zones"); got != "1 zone" {
		t.Errorf("FormatCount(1) = %q", got)
	}
	if got := FormatCount(3, "zone", "zones"); got != "3 zones" {
		t.Errorf("FormatCount(3) = %q", got)
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "+00:00"},
		{9 * 3600, "+09:00"},
		{-6 * 3600, "-06:00"},
		{5*3600 + 45*60, "+05:45"},
		{-(3*3600 + 30*60), "-03:30"},
	}
	for _, tt := range tests {
		if got := FormatOffset(tt.seconds); got != tt.want {
			t.Errorf("FormatOffset(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
