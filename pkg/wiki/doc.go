// Package wiki defines the document graph produced by a crawl.
//
// # Overview
//
// A document wiki is a set of markdown files linked to each other. Crawling
// it from one or more seeds produces a [Graph]: an insertion-ordered mapping
// from [Ref] to [Node]. Iteration order is discovery order, which keeps
// every consumer (the DOT renderer, the JSON exporter) deterministic for a
// given crawl.
//
// # References
//
// A [Ref] is the canonical absolute form of a document address. Local files
// are file:// URLs with a cleaned, NFC-normalized path and no query or
// fragment, so "a/../b.md#intro" and "b.md" referring to the same file
// compare equal. References with any other scheme keep their parsed string
// form; the crawler never loads them.
//
//	ref, _ := wiki.FromPath("chapters/one.md")
//	next, _ := ref.Resolve("two.md")      // file:///.../chapters/two.md
//	rel := wiki.Relativize(root, next)     // "chapters/two.md"
//
// # Nodes
//
// A [Node] is either a loaded document (metadata plus outgoing [LinkEdge]s)
// or an error node carrying an [ErrorKind]. Never both. Use [NewDocumentNode]
// and [NewErrorNode] to construct them; nodes are not modified after they
// are added to a graph.
//
// # Characters
//
// Character lists are deduplicated in first-seen order and, when a
// point-of-view character is set, that character is moved to the front.
// [OrderCharacters] implements the rule and is idempotent.
package wiki
