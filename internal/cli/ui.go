package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wikimap/pkg/wiki"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// styles renders status lines for one output stream, so color is only
// used when that stream is a terminal.
type styles struct {
	success lipgloss.Style
	warning lipgloss.Style
	value   lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		value:   r.NewStyle().Foreground(colorWhite),
		dim:     r.NewStyle().Foreground(colorDim),
	}
}

// =============================================================================
// Summary
// =============================================================================

// printSummary writes the graph size and the output file, if any, to
// stderr. Missing documents are logged as warnings during the crawl.
func (c *CLI) printSummary(g *wiki.Graph, opts mapOpts) {
	if opts.quiet {
		return
	}
	st := newStyles(c.Stderr)

	parts := []string{
		fmt.Sprintf("%d documents", g.Len()),
		fmt.Sprintf("%d links", g.EdgeCount()),
	}
	if n := g.ErrorCount(); n > 0 {
		parts = append(parts, st.warning.Render(fmt.Sprintf("%d missing", n)))
	}
	fmt.Fprintln(c.Stderr, st.success.Render(iconSuccess)+" "+strings.Join(parts, st.dim.Render(" · ")))

	if opts.output != "" {
		fmt.Fprintln(c.Stderr, "  "+st.dim.Render(iconArrow)+" "+st.value.Render(opts.output))
	}
}
