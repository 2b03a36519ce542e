package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	werrors "github.com/matzehuels/wikimap/pkg/errors"
	"github.com/matzehuels/wikimap/pkg/wiki"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(ctx context.Context, args ...string) result {
	var stdout, stderr bytes.Buffer
	c := New(&stdout, &stderr, LogInfo)
	cmd := c.RootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(ctx)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// fixture writes a small wiki and a config selecting the lexicon detector.
// It returns the wiki directory and the config path.
func fixture(t *testing.T) (string, string) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), `---
title: Arrival
place: Tavern
characters: [alice]
---
Welcome.

[Next](b.md)
[Go Back (Chapter One)](c.md)
[Prev: intro](intro.md)
`)
	writeFile(t, filepath.Join(dir, "b.md"), `---
status: draft
place: Tavern
---
Carol met Dave. Carol left.

[Later](c.md)
`)
	writeFile(t, filepath.Join(dir, "c.md"), "# Chapter\n\nThe end.\n")
	cfg := writeFile(t, filepath.Join(dir, "wikimap.toml"), `
[metadata]
detector = "lexicon"
people = ["Carol", "Dave"]
`)
	return dir, cfg
}

func quotedRef(t *testing.T, dir, name string) string {
	t.Helper()
	r, err := wiki.FromPath(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return `"` + r.String() + `"`
}

func TestRoot_NoArgs(t *testing.T) {
	res := execute(context.Background())

	if !werrors.Is(res.err, werrors.ErrCodeUsage) {
		t.Fatalf("error = %v, want USAGE", res.err)
	}
	if msg := werrors.UserMessage(res.err); msg != "usage: wikimap [flags] <seed-path>..." {
		t.Errorf("usage message = %q", msg)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want nothing", res.stdout)
	}
}

func TestRoot_InvalidSeed(t *testing.T) {
	res := execute(context.Background(), "   ")
	if !werrors.Is(res.err, werrors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want INVALID_PATH", res.err)
	}
}

func TestRoot_DOT(t *testing.T) {
	dir, cfg := fixture(t)
	res := execute(context.Background(), "--config", cfg, "--root", dir, filepath.Join(dir, "a.md"))
	if res.err != nil {
		t.Fatalf("execute error: %v\n%s", res.err, res.stderr)
	}

	a, b, c := quotedRef(t, dir, "a.md"), quotedRef(t, dir, "b.md"), quotedRef(t, dir, "c.md")
	intro := quotedRef(t, dir, "intro.md")
	for _, want := range []string{
		"digraph {\n",
		a + ` [label="Arrival\lTavern\l\lAlice\l" href="a.md" color="black" fontcolor="black"];`,
		b + ` [label="b\lTavern\l\lCarol, Dave\l" href="b.md" color="gray50" fontcolor="gray50"];`,
		a + " -> " + b + " [weight=1000];",
		a + " -> " + c + ` [label="Chapter One" weight=1000];`,
		b + " -> " + c + ` [weight=0 color="gray75"];`,
		intro + ` -> "NotFound";`,
		"subgraph cluster_0 {\n  label=\"Tavern\";\n  " + a + "; " + b + ";\n}\n",
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("output missing %s\n%s", want, res.stdout)
		}
	}
	if strings.Contains(res.stdout, a+" -> "+intro) {
		t.Errorf("Prev link should be suppressed:\n%s", res.stdout)
	}

	if !strings.Contains(res.stderr, "document not found") {
		t.Errorf("stderr should warn about intro.md:\n%s", res.stderr)
	}
	if !strings.Contains(res.stderr, "4 documents") || !strings.Contains(res.stderr, "1 missing") {
		t.Errorf("stderr summary = %q", res.stderr)
	}
}

func TestRoot_ConfigOverridesColors(t *testing.T) {
	dir, _ := fixture(t)
	cfg := writeFile(t, filepath.Join(dir, "colors.toml"), `
[render]
default_color = "navy"

[render.colors]
draft = "red"

[metadata]
detector = "lexicon"
`)
	res := execute(context.Background(), "--config", cfg, "--root", dir, filepath.Join(dir, "a.md"))
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.Contains(res.stdout, `href="b.md" color="red" fontcolor="red"`) {
		t.Errorf("draft color not overridden:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, `href="a.md" color="navy" fontcolor="navy"`) {
		t.Errorf("default color not overridden:\n%s", res.stdout)
	}
}

func TestRoot_JSONRoundTrip(t *testing.T) {
	dir, cfg := fixture(t)
	seed := filepath.Join(dir, "a.md")
	exported := filepath.Join(dir, "map.json")

	direct := execute(context.Background(), "--config", cfg, "--root", dir, seed)
	if direct.err != nil {
		t.Fatal(direct.err)
	}

	res := execute(context.Background(), "--config", cfg, "-o", exported, seed)
	if res.err != nil {
		t.Fatal(res.err)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want output in the file only", res.stdout)
	}
	data, err := os.ReadFile(exported)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("{")) || !bytes.Contains(data, []byte(`"characters"`)) {
		t.Errorf("format not inferred from .json extension:\n%s", data)
	}

	replay := execute(context.Background(), "--config", cfg, "--root", dir, "--input", exported)
	if replay.err != nil {
		t.Fatal(replay.err)
	}
	if replay.stdout != direct.stdout {
		t.Errorf("rendering the export differs from rendering the crawl:\n%s\n---\n%s", replay.stdout, direct.stdout)
	}
}

func TestRoot_FatalWritesNothing(t *testing.T) {
	dir, cfg := fixture(t)
	writeFile(t, filepath.Join(dir, "c.md"), "---\ntitle: never closed\n")
	out := filepath.Join(dir, "out.dot")

	res := execute(context.Background(), "--config", cfg, "-o", out, filepath.Join(dir, "a.md"))
	if !werrors.Is(res.err, werrors.ErrCodeFatal) {
		t.Fatalf("error = %v, want FATAL", res.err)
	}
	if !strings.Contains(res.err.Error(), "c.md") {
		t.Errorf("error should name the document: %v", res.err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output file created despite failure (stat err = %v)", err)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want nothing", res.stdout)
	}
}

func TestRoot_InvalidFormat(t *testing.T) {
	dir, cfg := fixture(t)
	res := execute(context.Background(), "--config", cfg, "-f", "gif", filepath.Join(dir, "a.md"))
	if !werrors.Is(res.err, werrors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", res.err)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir, _ := fixture(t)
	cfg := writeFile(t, filepath.Join(dir, "bad.toml"), "[render]\ncolour = 1\n")
	res := execute(context.Background(), "--config", cfg, filepath.Join(dir, "a.md"))
	if !werrors.Is(res.err, werrors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", res.err)
	}
}

func TestRoot_InvalidSalienceFlag(t *testing.T) {
	dir, cfg := fixture(t)
	for _, v := range []string{"0", "-5", "100"} {
		t.Run(v, func(t *testing.T) {
			res := execute(context.Background(), "--config", cfg, "--salience="+v, filepath.Join(dir, "a.md"))
			if !werrors.Is(res.err, werrors.ErrCodeInvalidConfig) {
				t.Errorf("--salience %s error = %v, want INVALID_CONFIG", v, res.err)
			}
			if res.stdout != "" {
				t.Errorf("output written despite error: %q", res.stdout)
			}
		})
	}
}

func TestRoot_SVG(t *testing.T) {
	dir, cfg := fixture(t)
	res := execute(context.Background(), "--config", cfg, "-f", "svg", filepath.Join(dir, "a.md"))
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.Contains(res.stdout, "<svg") {
		t.Errorf("output is not SVG: %.200s", res.stdout)
	}
}

func TestRoot_Verbosity(t *testing.T) {
	dir, cfg := fixture(t)
	seed := filepath.Join(dir, "a.md")

	verbose := execute(context.Background(), "-v", "--config", cfg, seed)
	if verbose.err != nil {
		t.Fatal(verbose.err)
	}
	if !strings.Contains(verbose.stderr, "crawl complete") || !strings.Contains(verbose.stderr, "render complete") {
		t.Errorf("verbose stderr missing debug events:\n%s", verbose.stderr)
	}

	quiet := execute(context.Background(), "-q", "--config", cfg, seed)
	if quiet.err != nil {
		t.Fatal(quiet.err)
	}
	if strings.Contains(quiet.stderr, "Crawled") || strings.Contains(quiet.stderr, "documents") {
		t.Errorf("quiet stderr should only carry warnings:\n%s", quiet.stderr)
	}
	if !strings.Contains(quiet.stderr, "document not found") {
		t.Errorf("quiet stderr should keep warnings:\n%s", quiet.stderr)
	}
}

func TestRoot_Canceled(t *testing.T) {
	dir, cfg := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := execute(ctx, "--config", cfg, filepath.Join(dir, "a.md"))
	if !errors.Is(res.err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", res.err)
	}
}

func TestRoot_Version(t *testing.T) {
	res := execute(context.Background(), "--version")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !strings.HasPrefix(res.stdout, "wikimap version ") {
		t.Errorf("version output = %q", res.stdout)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"", formatDOT},
		{"map.svg", formatSVG},
		{"map.JSON", formatJSON},
		{"map.gv", formatDOT},
		{"map.png", formatPNG},
		{"map.txt", formatDOT},
	}
	for _, tt := range tests {
		if got := formatFromPath(tt.path, formatDOT); got != tt.want {
			t.Errorf("formatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
