package tzdb

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
)

// zoneDirs are the usual locations of the host zoneinfo tree.
var zoneDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
}

// skipped subtrees and files that are not zone identifiers.
var (
	skipDirs  = map[string]bool{"posix": true, "right": true}
	skipFiles = map[string]bool{"localtime": true, "posixrules": true, "Factory": true}
)

// builtinZones is used when no zoneinfo tree is found on the host.
var builtinZones = []string{
	"Africa/Abidjan", "Africa/Cairo", "Africa/Casablanca", "Africa/Johannesburg",
	"Africa/Lagos", "Africa/Nairobi",
	"America/Anchorage", "America/Argentina/Buenos_Aires", "America/Bogota",
	"America/Chicago", "America/Denver", "America/Halifax", "America/Lima",
	"America/Los_Angeles", "America/Mexico_City", "America/New_York",
	"America/Phoenix", "America/Santiago", "America/Sao_Paulo", "America/St_Johns",
	"America/Toronto", "America/Vancouver",
	"Asia/Bangkok", "Asia/Dhaka", "Asia/Dubai", "Asia/Hong_Kong", "Asia/Jakarta",
	"Asia/Jerusalem", "Asia/Karachi", "Asia/Kathmandu", "Asia/Kolkata",
	"Asia/Manila", "Asia/Seoul", "Asia/Shanghai", "Asia/Singapore", "Asia/Taipei",
	"Asia/Tehran", "Asia/Tokyo",
	"Atlantic/Azores", "Atlantic/Reykjavik",
	"Australia/Adelaide", "Australia/Brisbane", "Australia/Darwin",
	"Australia/Lord_Howe", "Australia/Melbourne", "Australia/Perth", "Australia/Sydney",
	"Europe/Amsterdam", "Europe/Athens", "Europe/Berlin", "Europe/Dublin",
	"Europe/Helsinki", "Europe/Istanbul", "Europe/Kyiv", "Europe/Lisbon",
	"Europe/London", "Europe/Madrid", "Europe/Moscow", "Europe/Paris",
	"Europe/Rome", "Europe/Stockholm", "Europe/Warsaw", "Europe/Zurich",
	"Pacific/Apia", "Pacific/Auckland", "Pacific/Chatham", "Pacific/Honolulu",
	"Pacific/Kiritimati",
	"UTC",
}

var catalog = sync.OnceValue(loadCatalog)

// Names returns the sorted zone identifiers known to this host. The returned
// slice must not be modified.
func Names() []string {
	return catalog()
}

func loadCatalog() []string {
	for _, dir := range zoneDirs {
		names, err := scanZoneDir(os.DirFS(dir))
		if err != nil || len(names) == 0 {
			continue
		}
		slog.Debug("tzdb: loaded zone catalog", "dir", dir, "zones", len(names))
		return names
	}

	slog.Debug("tzdb: no zoneinfo directory, using built-in catalog")
	names := append([]string(nil), builtinZones...)
	sort.Strings(names)
	return names
}

// scanZoneDir walks a zoneinfo tree and returns the relative path of every
// TZif file in it.
func scanZoneDir(fsys fs.FS) ([]string, error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[name] {
				return fs.SkipDir
			}
			return nil
		}
		base := path.Base(name)
		if skipFiles[base] || strings.Contains(base, ".") || !isUpper(base[0]) {
			return nil
		}
		if isTZif(fsys, name) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

var tzifMagic = []byte("TZif")

func isTZif(fsys fs.FS, name string) bool {
	f, err := fsys.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, len(tzifMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return false
	}
	return bytes.Equal(head, tzifMagic)
}

// Filter returns the names containing filter, ignoring case. An empty filter
// returns all names.
func Filter(names []string, filter string) []string {
	if filter == "" {
		return names
	}
	var out []string
	for _, n := range names {
		if Matches(n, filter) {
			out = append(out, n)
		}
	}
	return out
}
