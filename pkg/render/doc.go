// Package render converts rendered graphs between output formats.
//
// The DOT renderer lives in the [dot] subpackage and produces SVG itself
// through Graphviz. [ToPDF] and [ToPNG] turn that SVG into print or bitmap
// output with the external rsvg-convert tool (from librsvg):
//
//	svg, err := dot.RenderSVG(ctx, src)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [dot]: github.com/matzehuels/wikimap/pkg/render/dot
package render
