package dot

import (
	"fmt"
	"maps"
	"strings"

	"github.com/matzehuels/wikimap/pkg/wiki"
)

// DefaultWrapWidth is the column at which labels wrap.
const DefaultWrapWidth = 20

// DefaultColor is used for statuses without an entry in the color table.
const DefaultColor = "black"

// DefaultColors returns the status color table.
func DefaultColors() map[wiki.Status]string {
	return map[wiki.Status]string{
		wiki.StatusVignette: "LightSteelBlue",
		wiki.StatusDraft:    "gray50",
		wiki.StatusOutline:  "gray75",
	}
}

// Edge attributes.
const (
	primaryWeight = 1000
	asideWeight   = 0
	asideColor    = "gray75"
)

// Options configures rendering.
type Options struct {
	// WrapWidth is the label wrap column. Zero uses DefaultWrapWidth.
	WrapWidth int
	// Colors overrides entries of DefaultColors.
	Colors map[wiki.Status]string
	// DefaultColor applies to statuses missing from Colors.
	DefaultColor string
}

// WithDefaults returns a copy of o with zero values replaced by defaults.
// Colors is merged over DefaultColors.
func (o Options) WithDefaults() Options {
	if o.WrapWidth <= 0 {
		o.WrapWidth = DefaultWrapWidth
	}
	colors := DefaultColors()
	maps.Copy(colors, o.Colors)
	o.Colors = colors
	if o.DefaultColor == "" {
		o.DefaultColor = DefaultColor
	}
	return o
}

func (o Options) color(s wiki.Status) string {
	if c, ok := o.Colors[s]; ok && c != "" {
		return c
	}
	return o.DefaultColor
}

// Render converts g to DOT source. Node hrefs are relative to root. The
// output depends only on g's iteration order.
func Render(root wiki.Ref, g *wiki.Graph, opts Options) string {
	opts = opts.WithDefaults()
	r := renderer{opts: opts, root: root, members: map[string][]wiki.Ref{}}

	r.line("digraph {")
	r.line(`tooltip=" ";`)
	r.line("newrank=true;")
	r.line(`graph [fontname="inherit" bgcolor="transparent"];`)
	r.line(`node [fontname="inherit" tooltip=" " shape="note" width="2"];`)
	r.line(`edge [fontname="inherit" tooltip=" "];`)

	for _, n := range g.Nodes() {
		r.node(n)
	}
	r.clusters()

	r.line("}")
	return r.buf.String()
}

type renderer struct {
	buf  strings.Builder
	opts Options
	root wiki.Ref

	places  []string
	members map[string][]wiki.Ref
}

func (r *renderer) line(format string, args ...any) {
	fmt.Fprintf(&r.buf, format, args...)
	r.buf.WriteByte('\n')
}

func (r *renderer) node(n *wiki.Node) {
	color := r.opts.color(n.Status)
	r.line("%s [label=%s href=%s color=%s fontcolor=%s];",
		quote(n.Ref.String()), r.label(n), quote(wiki.Relativize(r.root, n.Ref)), quote(color), quote(color))

	if n.IsError() {
		r.line("%s -> %s;", quote(n.Ref.String()), quote(string(n.Error)))
		return
	}

	if n.Place != "" {
		if _, ok := r.members[n.Place]; !ok {
			r.places = append(r.places, n.Place)
		}
		r.members[n.Place] = append(r.members[n.Place], n.Ref)
	}

	for _, e := range n.Edges {
		r.edge(n.Ref, e)
	}
}

// label lays out the node text as left-justified lines.
func (r *renderer) label(n *wiki.Node) string {
	lines := wrap(n.DisplayTitle(), r.opts.WrapWidth)
	if n.Place != "" {
		lines = append(lines, wrap(n.Place, r.opts.WrapWidth)...)
	}
	if len(n.Characters) > 0 {
		lines = append(lines, "")
		lines = append(lines, wrap(strings.Join(n.Characters, ", "), r.opts.WrapWidth)...)
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, l := range lines {
		b.WriteString(escape(l))
		b.WriteString(`\l`)
	}
	b.WriteByte('"')
	return b.String()
}

func (r *renderer) edge(from wiki.Ref, e wiki.LinkEdge) {
	c := Classify(e.Text)
	src, dst := quote(from.String()), quote(e.Target.String())

	switch c.Kind {
	case Suppressed:
		return
	case Primary:
		r.line("%s -> %s [weight=%d];", src, dst, primaryWeight)
		return
	case Aside:
		r.line("%s -> %s [weight=%d color=%s];", src, dst, asideWeight, quote(asideColor))
		return
	}

	if label := strings.Join(wrap(c.Label, r.opts.WrapWidth), "\n"); label != "" {
		r.line("%s -> %s [label=%s weight=%d];", src, dst, quote(label), primaryWeight)
	} else {
		r.line("%s -> %s [weight=%d];", src, dst, primaryWeight)
	}
	if c.Kind == Lateral {
		r.line("{ rank = same; %s; %s }", src, dst)
	}
}

func (r *renderer) clusters() {
	for i, place := range r.places {
		refs := r.members[place]
		ids := make([]string, len(refs))
		for j, ref := range refs {
			ids[j] = quote(ref.String())
		}
		r.line("subgraph cluster_%d {", i)
		r.line("  label=%s;", quote(place))
		r.line("  %s;", strings.Join(ids, "; "))
		r.line("}")
	}
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")

func escape(s string) string { return escaper.Replace(s) }

// quote returns s as a DOT double-quoted string.
func quote(s string) string { return `"` + escape(s) + `"` }
