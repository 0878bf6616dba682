package tzdb

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/hlop3z/tzconv/internal/alerr"
	"github.com/hlop3z/tzconv/internal/stamp"
)

func mustParse(t *testing.T, s string) stamp.Naive {
	t.Helper()
	n, err := stamp.Parse(s)
	if err != nil {
		t.Fatalf("stamp.Parse(%q) error = %v", s, err)
	}
	return n
}

func TestResolve(t *testing.T) {
	for _, name := range []string{"Asia/Tokyo", "Europe/London", "America/Chicago", "UTC"} {
		t.Run(name, func(t *testing.T) {
			z, err := Resolve(name)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", name, err)
			}
			if z.Name() != name {
				t.Errorf("Name() = %q, want %q", z.Name(), name)
			}
			if z.Location() == nil {
				t.Error("Location() is nil")
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	tests := []string{"Hoge/Fuga", "", "Local", "+09:00", "UTC+9", "../etc/passwd"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(name)
			if err == nil {
				t.Fatalf("Resolve(%q) expected error", name)
			}
			if !alerr.Is(err, alerr.ErrUnknownTimezone) {
				t.Errorf("Resolve(%q) code = %v, want %v", name, alerr.GetErrorCode(err), alerr.ErrUnknownTimezone)
			}
		})
	}
}

func TestResolveUnknownSuggests(t *testing.T) {
	_, err := Resolve("Asia/Tokio")
	e, ok := err.(*alerr.Error)
	if !ok {
		t.Fatalf("expected *alerr.Error, got %T", err)
	}
	if e.GetContext()["zone"] != "Asia/Tokio" {
		t.Errorf("zone context = %v", e.GetContext()["zone"])
	}

	found := false
	for _, h := range e.Helps() {
		if h == "did you mean 'Asia/Tokyo'?" {
			found = true
		}
	}
	if !found {
		t.Errorf("Helps() = %v, want a suggestion for Asia/Tokyo", e.Helps())
	}
}

func TestOffsetAt(t *testing.T) {
	chicago := MustResolve("America/Chicago")

	tests := []struct {
		name    string
		instant time.Time
		abbr    string
		offset  int
		dst     bool
	}{
		{"winter", time.Date(2019, 12, 7, 12, 0, 0, 0, time.UTC), "CST", -6 * 3600, false},
		{"summer", time.Date(2019, 7, 1, 12, 0, 0, 0, time.UTC), "CDT", -5 * 3600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abbr, off := chicago.OffsetAt(tt.instant)
			if abbr != tt.abbr || off != tt.offset {
				t.Errorf("OffsetAt() = %s %d, want %s %d", abbr, off, tt.abbr, tt.offset)
			}
			if got := chicago.IsDST(tt.instant); got != tt.dst {
				t.Errorf("IsDST() = %v, want %v", got, tt.dst)
			}
		})
	}
}

func TestOffsetAtHistorical(t *testing.T) {
	// British Standard Time kept London on UTC+1 through the 1968-71 winters.
	london := MustResolve("Europe/London")
	_, off := london.OffsetAt(time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC))
	if off != 3600 {
		t.Errorf("OffsetAt(1970-01-01) = %d, want 3600", off)
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name  string
		zone  string
		input string
		want  []string
	}{
		{
			name:  "unique",
			zone:  "America/Chicago",
			input: "2019/12/07 04:31:28",
			want:  []string{"2019-12-07T10:31:28Z"},
		},
		{
			name:  "spring forward gap",
			zone:  "America/Chicago",
			input: "2019/03/10 02:30:00",
			want:  nil,
		},
		{
			name:  "fall back overlap",
			zone:  "America/Chicago",
			input: "2019/11/03 01:30:00",
			want:  []string{"2019-11-03T06:30:00Z", "2019-11-03T07:30:00Z"},
		},
		{
			name:  "london overlap",
			zone:  "Europe/London",
			input: "2019/10/27 01:30:00",
			want:  []string{"2019-10-27T00:30:00Z", "2019-10-27T01:30:00Z"},
		},
		{
			name:  "london gap",
			zone:  "Europe/London",
			input: "2019/03/31 01:15:00",
			want:  nil,
		},
		{
			name:  "fixed zone never ambiguous",
			zone:  "Asia/Tokyo",
			input: "2019/11/03 01:30:00",
			want:  []string{"2019-11-02T16:30:00Z"},
		},
		{
			name:  "edge before gap",
			zone:  "America/Chicago",
			input: "2019/03/10 01:59:59",
			want:  []string{"2019-03-10T07:59:59Z"},
		},
		{
			name:  "edge after gap",
			zone:  "America/Chicago",
			input: "2019/03/10 03:00:00",
			want:  []string{"2019-03-10T08:00:00Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustResolve(tt.zone).Candidates(mustParse(t, tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("Candidates() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if s := got[i].UTC().Format(time.RFC3339); s != tt.want[i] {
					t.Errorf("Candidates()[%d] = %s, want %s", i, s, tt.want[i])
				}
			}
		})
	}
}

func TestScanZoneDir(t *testing.T) {
	tzif := &fstest.MapFile{Data: []byte("TZif2\x00\x00")}
	fsys := fstest.MapFS{
		"Asia/Tokyo":           tzif,
		"Europe/London":        tzif,
		"UTC":                  tzif,
		"posix/Asia/Tokyo":     tzif,
		"right/Europe/London":  tzif,
		"localtime":            tzif,
		"posixrules":           tzif,
		"zone.tab":             {Data: []byte("# tab")},
		"leapseconds":          {Data: []byte("# leap")},
		"SECURITY":             {Data: []byte("Please report")},
		"America/Indiana/Knox": tzif,
	}

	got, err := scanZoneDir(fsys)
	if err != nil {
		t.Fatalf("scanZoneDir() error = %v", err)
	}

	want := []string{"America/Indiana/Knox", "Asia/Tokyo", "Europe/London", "UTC"}
	if len(got) != len(want) {
		t.Fatalf("scanZoneDir() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scanZoneDir()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNamesIncludesCommonZones(t *testing.T) {
	names := Names()
	for _, want := range []string{"Asia/Tokyo", "Europe/London", "America/Chicago"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Names() missing %q", want)
		}
	}
}

func TestFilter(t *testing.T) {
	names := []string{"America/Chicago", "Asia/Tokyo", "Europe/London"}

	if got := Filter(names, ""); len(got) != 3 {
		t.Errorf("Filter(\"\") = %v", got)
	}
	if got := Filter(names, "TOKYO"); len(got) != 1 || got[0] != "Asia/Tokyo" {
		t.Errorf("Filter(TOKYO) = %v", got)
	}
	if got := Filter(names, "mars"); len(got) != 0 {
		t.Errorf("Filter(mars) = %v", got)
	}
}
