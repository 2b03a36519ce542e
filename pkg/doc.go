// Package pkg provides the libraries behind wikimap, a tool that maps a
// directory of linked markdown documents into a Graphviz diagram.
//
// # Overview
//
// A wiki here is a set of markdown files that link to one another with
// relative links, such as a branching story or a design notebook. wikimap
// starts from one or more seed documents, follows every local link and draws
// the result. The pkg directory is organized into these areas:
//
//  1. [wiki] - References, nodes and the document graph
//  2. [document], [frontmatter], [markdown] - Loading and parsing one file
//  3. [metadata], [people] - Titles, places and the characters in a document
//  4. [crawl] - Breadth-first traversal from the seeds
//  5. [render/dot], [render] - DOT, SVG, PDF and PNG output
//  6. [io] - JSON export and re-import of a crawled graph
//  7. [cache], [observability], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through wikimap:
//
//	Seed documents
//	     ↓
//	[crawl] package (load, parse, extract metadata, follow links)
//	     ↓
//	[wiki.Graph] (nodes keyed by reference, edges in source order)
//	     ↓
//	[render/dot] package (clusters, edge styles, node labels)
//	     ↓
//	DOT/SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Crawl a wiki and render it as DOT:
//
//	import (
//	    "github.com/matzehuels/wikimap/pkg/crawl"
//	    "github.com/matzehuels/wikimap/pkg/document"
//	    "github.com/matzehuels/wikimap/pkg/metadata"
//	    "github.com/matzehuels/wikimap/pkg/people"
//	    "github.com/matzehuels/wikimap/pkg/render/dot"
//	    "github.com/matzehuels/wikimap/pkg/wiki"
//	)
//
//	root, _ := wiki.FromPath("story")
//	seed, _ := wiki.FromPath("story/start.md")
//
//	extractor := metadata.New(people.NewProseDetector(), metadata.Options{})
//	crawler := crawl.New(document.FileLoader{}, extractor, crawl.Options{})
//
//	g, err := crawler.Crawl(ctx, []wiki.Ref{seed})
//	if err != nil {
//	    return err
//	}
//	src := dot.Render(root, g, dot.Options{})
//
// The wikimap command wires the same pieces together and adds
// configuration, caching and output conversion. See cmd/wikimap.
//
// [wiki]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/wiki
// [wiki.Graph]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/wiki#Graph
// [document]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/document
// [frontmatter]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/frontmatter
// [markdown]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/markdown
// [metadata]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/metadata
// [people]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/people
// [crawl]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/crawl
// [render]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/render
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/render/dot
// [io]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wikimap/pkg/buildinfo
package pkg
