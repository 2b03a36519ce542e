// Package crawl builds a document graph by following links from seeds.
//
// # Traversal
//
// The crawler keeps an explicit FIFO worklist (the frontier) and a visited
// set. Each step removes one reference from the frontier:
//
//   - already visited, or not a file:// reference: discarded
//   - otherwise: marked visited, loaded, and its links and metadata
//     extracted
//
// A loaded document becomes a node and every link target is appended to the
// frontier. Because a reference is expanded only on its first visit, cycles
// terminate and a document linked from many places is loaded once; the
// back-edge itself is still recorded on its source node.
//
// # Errors
//
// A document that does not exist becomes an error node of kind
// [wiki.ErrorKindNotFound] and the crawl continues elsewhere. Any other
// failure aborts the whole crawl: Crawl returns a nil graph and an error with
// code FATAL that names the offending reference. Context cancellation is
// returned unwrapped.
//
// # Concurrency
//
// Documents are processed one at a time, so the graph, visited set and
// metadata extractor are never shared between goroutines.
package crawl

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/matzehuels/wikimap/pkg/document"
	werrors "github.com/matzehuels/wikimap/pkg/errors"
	"github.com/matzehuels/wikimap/pkg/markdown"
	"github.com/matzehuels/wikimap/pkg/observability"
	"github.com/matzehuels/wikimap/pkg/wiki"
)

// MetadataExtractor derives document metadata. [metadata.Extractor]
// implements it.
type MetadataExtractor interface {
	Extract(ctx context.Context, ref wiki.Ref, attrs map[string]any, body []byte) (wiki.Metadata, error)
}

// LinkExtractor returns the resolved links of a markdown body.
type LinkExtractor func(ref wiki.Ref, body []byte) ([]wiki.LinkEdge, error)

// Options configures a [Crawler].
type Options struct {
	// Logger receives a warning per missing document. Nil discards them.
	Logger *log.Logger
	// Links overrides link extraction. Nil uses [markdown.Links].
	Links LinkExtractor
}

// WithDefaults returns a copy of o with nil fields replaced by defaults.
func (o Options) WithDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Links == nil {
		o.Links = markdown.Links
	}
	return o
}

// Crawler orchestrates loading and extraction into a [wiki.Graph].
type Crawler struct {
	loader    document.Loader
	extractor MetadataExtractor
	opts      Options
}

// New creates a Crawler.
func New(loader document.Loader, extractor MetadataExtractor, opts Options) *Crawler {
	return &Crawler{loader: loader, extractor: extractor, opts: opts.WithDefaults()}
}

// Crawl discovers the graph reachable from seeds. Duplicate seeds are
// harmless. On a fatal error no graph is returned.
func (c *Crawler) Crawl(ctx context.Context, seeds []wiki.Ref) (*wiki.Graph, error) {
	hooks := observability.Crawl()
	start := time.Now()
	hooks.OnCrawlStart(ctx, len(seeds))

	g, err := c.run(ctx, seeds)
	if err != nil {
		hooks.OnCrawlComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnCrawlComplete(ctx, g.Len(), g.ErrorCount(), time.Since(start), nil)
	return g, nil
}

func (c *Crawler) run(ctx context.Context, seeds []wiki.Ref) (*wiki.Graph, error) {
	g := wiki.NewGraph()
	visited := mapset.NewThreadUnsafeSet[wiki.Ref]()
	frontier := append([]wiki.Ref(nil), seeds...)

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ref := frontier[0]
		frontier = frontier[1:]
		if visited.Contains(ref) || !ref.IsFile() {
			continue
		}
		visited.Add(ref)

		n, err := c.visit(ctx, ref)
		if err != nil {
			return nil, err
		}
		if err := g.Add(n); err != nil {
			return nil, werrors.Wrap(werrors.ErrCodeInternal, err, "record %s", ref)
		}
		for _, e := range n.Edges {
			frontier = append(frontier, e.Target)
		}
	}
	return g, nil
}

// visit loads one document. A missing document yields an error node; any
// other failure is returned.
func (c *Crawler) visit(ctx context.Context, ref wiki.Ref) (*wiki.Node, error) {
	hooks := observability.Crawl()
	start := time.Now()

	n, err := c.load(ctx, ref)
	switch {
	case err == nil:
		hooks.OnDocument(ctx, ref.String(), observability.OutcomeLoaded, len(n.Edges), time.Since(start))
		return n, nil
	case werrors.Is(err, werrors.ErrCodeNotFound), errors.Is(err, fs.ErrNotExist):
		c.opts.Logger.Warn("document not found", "ref", ref)
		hooks.OnDocument(ctx, ref.String(), observability.OutcomeNotFound, 0, time.Since(start))
		return wiki.NewErrorNode(ref, wiki.ErrorKindNotFound), nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err
	default:
		hooks.OnDocument(ctx, ref.String(), observability.OutcomeFailed, 0, time.Since(start))
		return nil, werrors.Wrap(werrors.ErrCodeFatal, err, "crawl %s", ref)
	}
}

func (c *Crawler) load(ctx context.Context, ref wiki.Ref) (*wiki.Node, error) {
	doc, err := c.loader.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	edges, err := c.opts.Links(ref, doc.Body)
	if err != nil {
		return nil, err
	}
	meta, err := c.extractor.Extract(ctx, ref, doc.Attributes, doc.Body)
	if err != nil {
		return nil, err
	}
	return wiki.NewDocumentNode(ref, meta, edges), nil
}
