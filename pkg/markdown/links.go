package markdown

import (
	"bytes"
	"fmt"

	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"github.com/matzehuels/wikimap/pkg/wiki"
)

// Links parses body and returns its links resolved against ref.
func Links(ref wiki.Ref, body []byte) ([]wiki.LinkEdge, error) {
	return ExtractLinks(ref, body, Parse(body))
}

// ExtractLinks walks the AST rooted at n and returns one edge per link in
// document order. Link targets are resolved against ref; anchor text is the
// literal text run that opens the link, with backslash escapes and character
// references decoded. Autolinks count as
// links whose anchor is the URL. Images contribute nothing.
//
// source must be the buffer n was parsed from.
func ExtractLinks(ref wiki.Ref, source []byte, n gmast.Node) ([]wiki.LinkEdge, error) {
	switch node := n.(type) {
	case *gmast.Link:
		edge, err := newEdge(ref, string(node.Destination), anchorText(node, source))
		if err != nil {
			return nil, err
		}
		return []wiki.LinkEdge{edge}, nil
	case *gmast.AutoLink:
		url := string(node.URL(source))
		edge, err := newEdge(ref, url, string(node.Label(source)))
		if err != nil {
			return nil, err
		}
		return []wiki.LinkEdge{edge}, nil
	case *gmast.Image:
		return nil, nil
	}

	var edges []wiki.LinkEdge
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		child, err := ExtractLinks(ref, source, c)
		if err != nil {
			return nil, err
		}
		edges = append(edges, child...)
	}
	return edges, nil
}

func newEdge(ref wiki.Ref, dest, anchor string) (wiki.LinkEdge, error) {
	target, err := ref.Resolve(dest)
	if err != nil {
		return wiki.LinkEdge{}, fmt.Errorf("link %q in %s: %w", dest, ref, err)
	}
	return wiki.LinkEdge{Target: target, Text: anchor}, nil
}

// anchorText returns the leading run of text children of a link. Goldmark
// may split one run of characters into several adjacent text nodes; they
// are joined back together and the run ends at the first non-text child.
// Text segments hold raw source, so an escaped "\(" is decoded to "(" here.
func anchorText(link gmast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := link.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(unescape(t.Value(source)))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *gmast.String:
			buf.Write(t.Value)
		default:
			return buf.String()
		}
	}
	return buf.String()
}

// unescape decodes backslash escapes and entity and numeric character
// references the way goldmark's HTML writer does.
func unescape(raw []byte) []byte {
	return util.ResolveNumericReferences(util.ResolveEntityNames(util.UnescapePunctuations(raw)))
}
