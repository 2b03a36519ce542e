// Package dot renders a document graph as Graphviz DOT.
//
// # Overview
//
// Every document becomes a note-shaped node labeled with its title, its
// place and its characters. Links become edges whose style depends on the
// anchor text:
//
//   - "Prev..."       no edge
//   - "Next"          unlabeled edge with full layout weight (the spine)
//   - "Later"         unlabeled gray edge with zero weight (an aside)
//   - "Go (Cellar)"   edge labeled "Cellar"
//   - "Alt ending"    labeled edge whose ends share a rank
//
// [Classify] makes that decision for a single anchor and can be used on its
// own.
//
// # Usage
//
//	src := dot.Render(root, g, dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//
// Documents that share a place are grouped into a cluster. A document that
// could not be found gets a single edge to a pseudo-node named after the
// error kind, so broken links stay visible in the picture.
//
// # Options
//
// [Options] controls the wrap width of labels and the status color table.
// The zero value uses [DefaultWrapWidth], [DefaultColors] and
// [DefaultColor].
package dot
