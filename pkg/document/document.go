// Package document loads wiki documents by reference.
//
// A [Loader] turns a [wiki.Ref] into a [Document]: decoded front-matter
// attributes plus the markdown body. Each load reads the whole file and
// releases it before returning. A missing file surfaces as a NOT_FOUND
// error that also matches [fs.ErrNotExist], so callers can tell a broken
// link from a real failure.
//
// References carry NFC-normalized paths. [FileLoader] maps them back to the
// names stored on disk, so documents saved with decomposed names still load.
package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	werrors "github.com/matzehuels/wikimap/pkg/errors"
	"github.com/matzehuels/wikimap/pkg/frontmatter"
	"github.com/matzehuels/wikimap/pkg/wiki"
)

// Document is a loaded wiki page.
type Document struct {
	Ref        wiki.Ref
	Attributes map[string]any
	Body       []byte
}

// Loader reads documents.
type Loader interface {
	// Load reads and splits the document at ref. When the document does not
	// exist the error carries the NOT_FOUND code or matches fs.ErrNotExist.
	Load(ctx context.Context, ref wiki.Ref) (*Document, error)
}

// LoaderFunc adapts an ordinary function to the [Loader] interface.
type LoaderFunc func(ctx context.Context, ref wiki.Ref) (*Document, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, ref wiki.Ref) (*Document, error) {
	return f(ctx, ref)
}

// FileLoader reads documents from the local filesystem.
type FileLoader struct{}

// Load implements [Loader].
func (FileLoader) Load(ctx context.Context, ref wiki.Ref) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := ref.Path()
	if path == "" {
		return nil, fmt.Errorf("%s is not a local file", ref)
	}
	raw, err := os.ReadFile(onDiskPath(path))
	if err != nil {
		return nil, loadError(ref, err)
	}
	return decode(ref, raw)
}

// FSLoader reads documents from an [fs.FS]. A reference's absolute path is
// looked up with its leading slash removed, so file:///wiki/a.md maps to
// "wiki/a.md".
type FSLoader struct {
	FS fs.FS
}

// Load implements [Loader].
func (l FSLoader) Load(ctx context.Context, ref wiki.Ref) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ref.IsFile() {
		return nil, fmt.Errorf("%s is not a local file", ref)
	}
	name := strings.TrimPrefix(strings.ReplaceAll(ref.Path(), "\\", "/"), "/")
	raw, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, loadError(ref, err)
	}
	return decode(ref, raw)
}

// loadError tags a missing document with the NOT_FOUND code. The cause is
// kept, so errors.Is(err, fs.ErrNotExist) still holds.
func loadError(ref wiki.Ref, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return werrors.Wrap(werrors.ErrCodeNotFound, err, "load %s", ref)
	}
	return err
}

func decode(ref wiki.Ref, raw []byte) (*Document, error) {
	doc, err := frontmatter.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", ref, err)
	}
	return &Document{Ref: ref, Attributes: doc.Attributes, Body: doc.Body}, nil
}

var (
	_ Loader = FileLoader{}
	_ Loader = FSLoader{}
	_ Loader = LoaderFunc(nil)
)
