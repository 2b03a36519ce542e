package wiki

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_Normalizes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Ref
	}{
		{"plain", "file:///wiki/a.md", "file:///wiki/a.md"},
		{"dot segments", "file:///wiki/x/../a.md", "file:///wiki/a.md"},
		{"fragment dropped", "file:///wiki/a.md#scene-2", "file:///wiki/a.md"},
		{"query dropped", "file:///wiki/a.md?v=1", "file:///wiki/a.md"},
		{"localhost host", "file://localhost/wiki/a.md", "file:///wiki/a.md"},
		{"escaped space", "file:///wiki/a%20b.md", "file:///wiki/a%20b.md"},
		{"decomposed unicode", "file:///wiki/cafe%CC%81.md", "file:///wiki/caf%C3%A9.md"},
		{"http kept", "https://example.com/a?b=c#d", "https://example.com/a?b=c#d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_RejectsRelative(t *testing.T) {
	if _, err := Parse("a.md"); err == nil {
		t.Error("Parse(relative) should fail")
	}
}

func TestResolve(t *testing.T) {
	base := MustParse("file:///wiki/ch/a.md")
	tests := []struct {
		target string
		want   Ref
	}{
		{"b.md", "file:///wiki/ch/b.md"},
		{"./b.md", "file:///wiki/ch/b.md"},
		{"../index.md", "file:///wiki/index.md"},
		{"sub/d%20e.md", "file:///wiki/ch/sub/d%20e.md"},
		{"#later", "file:///wiki/ch/a.md"},
		{"b.md#top", "file:///wiki/ch/b.md"},
		{"/abs/c.md", "file:///abs/c.md"},
		{"https://example.com/x", "https://example.com/x"},
		{"mailto:me@example.com", "mailto:me@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, err := base.Resolve(tt.target)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.target, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "start here.md")

	ref, err := FromPath(p)
	if err != nil {
		t.Fatalf("FromPath error: %v", err)
	}
	if !ref.IsFile() {
		t.Errorf("FromPath(%q) scheme = %q, want file", p, ref.Scheme())
	}
	if !strings.HasSuffix(ref.String(), "/start%20here.md") {
		t.Errorf("FromPath(%q) = %q, want escaped file name", p, ref)
	}
	if ref.Path() != p {
		t.Errorf("Path() = %q, want %q", ref.Path(), p)
	}
}

func TestFromPath_SameFileSameRef(t *testing.T) {
	dir := t.TempDir()
	a, _ := FromPath(filepath.Join(dir, "x", "..", "a.md"))
	b, _ := FromPath(filepath.Join(dir, "a.md"))
	if a != b {
		t.Errorf("FromPath refs differ: %q vs %q", a, b)
	}
}

func TestSchemeAndIsFile(t *testing.T) {
	tests := []struct {
		ref    Ref
		scheme string
		isFile bool
	}{
		{"file:///a.md", "file", true},
		{"https://example.com", "https", false},
		{"mailto:x@y.z", "mailto", false},
	}
	for _, tt := range tests {
		if got := tt.ref.Scheme(); got != tt.scheme {
			t.Errorf("%q.Scheme() = %q, want %q", tt.ref, got, tt.scheme)
		}
		if got := tt.ref.IsFile(); got != tt.isFile {
			t.Errorf("%q.IsFile() = %v, want %v", tt.ref, got, tt.isFile)
		}
	}
}

func TestBaseAndStem(t *testing.T) {
	ref := MustParse("file:///wiki/Chapter%20One.md")
	if got := ref.Base(); got != "Chapter One.md" {
		t.Errorf("Base() = %q, want %q", got, "Chapter One.md")
	}
	if got := ref.Stem(); got != "Chapter One" {
		t.Errorf("Stem() = %q, want %q", got, "Chapter One")
	}
}

func TestRelativize(t *testing.T) {
	root := MustParse("file:///home/me/wiki")
	tests := []struct {
		name   string
		target Ref
		want   string
	}{
		{"child", "file:///home/me/wiki/one.md", "one.md"},
		{"nested", "file:///home/me/wiki/ch/two.md", "ch/two.md"},
		{"outside", "file:///home/me/notes.md", "../notes.md"},
		{"escaped", "file:///home/me/wiki/a%20b.md", "a%20b.md"},
		{"non-file", "https://example.com/x", "https://example.com/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relativize(root, tt.target); got != tt.want {
				t.Errorf("Relativize(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}
