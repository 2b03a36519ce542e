package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/matzehuels/wikimap/pkg/crawl"
	"github.com/matzehuels/wikimap/pkg/document"
	werrors "github.com/matzehuels/wikimap/pkg/errors"
	"github.com/matzehuels/wikimap/pkg/io"
	"github.com/matzehuels/wikimap/pkg/metadata"
	"github.com/matzehuels/wikimap/pkg/observability"
	"github.com/matzehuels/wikimap/pkg/render"
	"github.com/matzehuels/wikimap/pkg/render/dot"
	"github.com/matzehuels/wikimap/pkg/wiki"
)

// runMap crawls (or imports) the graph, renders it and writes the result.
// Nothing is written unless every step succeeds.
func (c *CLI) runMap(ctx context.Context, cfg config, opts mapOpts, args []string) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	root, err := wiki.FromPath(opts.root)
	if err != nil {
		return werrors.Wrap(werrors.ErrCodeInvalidPath, err, "root %s", opts.root)
	}

	ctx = withLogger(ctx, c.Logger)
	hooks := newLogHooks(c.Logger)
	observability.SetCrawlHooks(hooks)
	observability.SetRenderHooks(hooks)
	defer observability.Reset()

	g, characters, err := c.buildGraph(ctx, cfg, opts, args)
	if err != nil {
		return err
	}

	out, err := renderGraph(ctx, opts, root, g, characters, cfg.renderOptions())
	if err != nil {
		return err
	}
	if err := c.write(opts.output, out); err != nil {
		return err
	}
	c.printSummary(g, opts)
	return nil
}

// buildGraph returns the document graph and the characters seen in it.
func (c *CLI) buildGraph(ctx context.Context, cfg config, opts mapOpts, args []string) (*wiki.Graph, []string, error) {
	logger := loggerFromContext(ctx)

	if opts.input != "" {
		if len(args) > 0 {
			logger.Warn("Seeds are ignored with --input", "count", len(args))
		}
		prog := newProgress(logger)
		g, characters, err := io.ImportJSON(opts.input)
		if err != nil {
			return nil, nil, werrors.Wrap(werrors.ErrCodeFatal, err, "import graph")
		}
		prog.done(fmt.Sprintf("Imported %d documents", g.Len()))
		return g, characters, nil
	}

	seeds, err := seedRefs(args)
	if err != nil {
		return nil, nil, err
	}

	store := newCache(opts.useCache, logger)
	defer store.Close()

	extractor := metadata.New(cfg.detector(store, logger), cfg.metadataOptions())
	crawler := crawl.New(document.FileLoader{}, extractor, crawl.Options{Logger: logger})

	prog := newProgress(logger)
	g, err := crawler.Crawl(ctx, seeds)
	if err != nil {
		return nil, nil, err
	}
	prog.done(fmt.Sprintf("Crawled %d documents", g.Len()))
	return g, extractor.Characters(), nil
}

func seedRefs(args []string) ([]wiki.Ref, error) {
	seeds := make([]wiki.Ref, 0, len(args))
	for _, a := range args {
		ref, err := wiki.FromPath(a)
		if err != nil {
			return nil, werrors.Wrap(werrors.ErrCodeInvalidPath, err, "seed %s", a)
		}
		seeds = append(seeds, ref)
	}
	return seeds, nil
}

// renderGraph produces the output bytes for opts.format.
func renderGraph(ctx context.Context, opts mapOpts, root wiki.Ref, g *wiki.Graph, characters []string, ropts dot.Options) ([]byte, error) {
	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.format, g.Len())

	out, err := renderFormat(ctx, opts, root, g, characters, ropts)
	hooks.OnRenderComplete(ctx, opts.format, len(out), time.Since(start), err)
	if err != nil {
		return nil, werrors.Wrap(werrors.ErrCodeFatal, err, "render %s", opts.format)
	}
	return out, nil
}

func renderFormat(ctx context.Context, opts mapOpts, root wiki.Ref, g *wiki.Graph, characters []string, ropts dot.Options) ([]byte, error) {
	if opts.format == formatJSON {
		var buf bytes.Buffer
		if err := io.WriteJSON(g, characters, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	src := dot.Render(root, g, ropts)
	if opts.format == formatDOT {
		return []byte(src), nil
	}

	svg, err := dot.RenderSVG(ctx, src)
	if err != nil {
		return nil, err
	}
	switch opts.format {
	case formatPDF:
		return render.ToPDF(ctx, svg)
	case formatPNG:
		return render.ToPNG(ctx, svg, opts.scale)
	}
	return svg, nil
}

// write sends out to path, or to stdout when path is empty.
func (c *CLI) write(path string, out []byte) error {
	if path == "" {
		if _, err := c.Stdout.Write(out); err != nil {
			return werrors.Wrap(werrors.ErrCodeFatal, err, "write output")
		}
		return nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return werrors.Wrap(werrors.ErrCodeFatal, err, "write %s", path)
	}
	return nil
}
