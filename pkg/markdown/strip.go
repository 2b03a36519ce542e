package markdown

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
)

// Strip returns the prose of a markdown body with all syntax removed.
//
// Block elements end with a newline and soft line breaks become spaces.
// Code, raw HTML, images and autolinks are dropped since they are not
// narrative text.
func Strip(body []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(Parse(body), func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		switch node := n.(type) {
		case *gmast.FencedCodeBlock, *gmast.CodeBlock, *gmast.HTMLBlock,
			*gmast.CodeSpan, *gmast.RawHTML, *gmast.Image, *gmast.AutoLink:
			return gmast.WalkSkipChildren, nil
		case *gmast.Text:
			if entering {
				sb.Write(node.Segment.Value(body))
				switch {
				case node.HardLineBreak():
					sb.WriteByte('\n')
				case node.SoftLineBreak():
					sb.WriteByte(' ')
				}
			}
		case *gmast.String:
			if entering {
				sb.Write(node.Value)
			}
		default:
			if !entering && n.Type() == gmast.TypeBlock {
				sb.WriteByte('\n')
			}
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
