package wiki

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SchemeFile is the only scheme the crawler loads.
const SchemeFile = "file"

// Ref is a canonical absolute document reference.
//
// Two Refs are equal exactly when their normalized string forms are equal.
// The zero value is not a valid reference.
type Ref string

// FromPath converts a filesystem path (relative to the working directory or
// absolute) into a file reference.
func FromPath(p string) (Ref, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	slashed := filepath.ToSlash(abs)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed // Windows drive paths
	}
	if strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator)) {
		slashed += "/"
	}
	return fileRef(slashed), nil
}

// Parse parses and normalizes an absolute reference.
func Parse(s string) (Ref, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse reference %q: %w", s, err)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("reference %q is not absolute", s)
	}
	return normalize(u), nil
}

// MustParse is like [Parse] but panics on error. Intended for tests and
// package-level constants.
func MustParse(s string) Ref {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve resolves target (typically a link destination) against r.
// Absolute targets are normalized and returned as-is.
func (r Ref) Resolve(target string) (Ref, error) {
	base, err := url.Parse(string(r))
	if err != nil {
		return "", fmt.Errorf("parse base %q: %w", r, err)
	}
	t, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parse link %q: %w", target, err)
	}
	return normalize(base.ResolveReference(t)), nil
}

// String returns the reference's normalized string form.
func (r Ref) String() string { return string(r) }

// Scheme returns the reference's URL scheme, lowercased.
func (r Ref) Scheme() string {
	u, err := url.Parse(string(r))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// IsFile reports whether r addresses a local file.
func (r Ref) IsFile() bool { return r.Scheme() == SchemeFile }

// Path returns the local filesystem path of a file reference.
// It returns an empty string for other schemes.
func (r Ref) Path() string {
	u, err := url.Parse(string(r))
	if err != nil || !strings.EqualFold(u.Scheme, SchemeFile) {
		return ""
	}
	p := u.Path
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:] // "/C:/wiki" -> "C:/wiki"
	}
	return filepath.FromSlash(p)
}

// Base returns the last element of the reference's path, unescaped.
func (r Ref) Base() string {
	u, err := url.Parse(string(r))
	if err != nil {
		return string(r)
	}
	return path.Base(u.Path)
}

// Stem returns [Ref.Base] with its extension removed.
func (r Ref) Stem() string {
	b := r.Base()
	return strings.TrimSuffix(b, path.Ext(b))
}

// Relativize formats target relative to base. Base is treated as a
// directory. When either reference is not a local file, target is returned
// unchanged.
func Relativize(base, target Ref) string {
	if !base.IsFile() || !target.IsFile() {
		return target.String()
	}
	bu, _ := url.Parse(string(base))
	tu, _ := url.Parse(string(target))
	rel, err := filepath.Rel(filepath.FromSlash(bu.Path), filepath.FromSlash(tu.Path))
	if err != nil {
		return target.String()
	}
	return (&url.URL{Path: filepath.ToSlash(rel)}).String()
}

// normalize canonicalizes a parsed URL into a Ref.
func normalize(u *url.URL) Ref {
	if !strings.EqualFold(u.Scheme, SchemeFile) {
		return Ref(u.String())
	}
	// file://localhost/x and file:///x name the same file.
	return fileRef(u.Path)
}

func fileRef(p string) Ref {
	p = norm.NFC.String(p)
	trailing := strings.HasSuffix(p, "/") && p != "/"
	cleaned := path.Clean("/" + p)
	if trailing {
		cleaned += "/"
	}
	return Ref((&url.URL{Scheme: SchemeFile, Path: cleaned}).String())
}
