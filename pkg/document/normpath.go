package document

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// onDiskPath maps a path whose components were normalized to NFC back to
// the names actually stored on disk. Filesystems that compare names byte
// for byte keep decomposed (NFD) names as written, so a component that does
// not exist verbatim is matched against its directory's entries by NFC form.
// When nothing matches, p is returned unchanged.
func onDiskPath(p string) string {
	if _, err := os.Lstat(p); err == nil {
		return p
	}

	vol := filepath.VolumeName(p)
	rest := strings.TrimPrefix(p[len(vol):], string(filepath.Separator))
	cur := vol + string(filepath.Separator)
	if !filepath.IsAbs(p) {
		cur, rest = "", p
	}

	for _, comp := range strings.Split(rest, string(filepath.Separator)) {
		if comp == "" {
			continue
		}
		next := filepath.Join(cur, comp)
		if _, err := os.Lstat(next); err != nil {
			name, ok := matchNFC(cur, comp)
			if !ok {
				return p
			}
			next = filepath.Join(cur, name)
		}
		cur = next
	}
	return cur
}

// matchNFC returns the entry of dir whose NFC form equals name's.
func matchNFC(dir, name string) (string, bool) {
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	want := norm.NFC.String(name)
	for _, e := range entries {
		if norm.NFC.String(e.Name()) == want {
			return e.Name(), true
		}
	}
	return "", false
}
