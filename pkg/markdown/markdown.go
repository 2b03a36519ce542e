// Package markdown analyzes markdown bodies with goldmark: it extracts the
// outgoing links of a document and strips markup down to plain text for
// person detection. It never re-renders markdown.
package markdown

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parse parses a markdown body (front matter already removed) into a
// goldmark AST. Goldmark accepts any input, so Parse cannot fail.
func Parse(body []byte) gmast.Node {
	return goldmark.New().Parser().Parse(text.NewReader(body))
}
