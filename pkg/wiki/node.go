package wiki

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Status is a document's narrative status, taken from front matter.
// Values outside the named constants are kept as written (case-folded).
type Status string

// Known statuses. Anything else renders like [StatusFinal].
const (
	StatusFinal    Status = "final"
	StatusDraft    Status = "draft"
	StatusOutline  Status = "outline"
	StatusVignette Status = "vignette"
)

// ParseStatus case-folds s and defaults an empty value to [StatusFinal].
func ParseStatus(s string) Status {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StatusFinal
	}
	return Status(s)
}

// ErrorKind classifies why a document could not be loaded.
type ErrorKind string

// ErrorKindNotFound marks a link whose target document does not exist.
// It doubles as the name of the pseudo-node broken links point to.
const ErrorKindNotFound ErrorKind = "NotFound"

// LinkEdge is a directed link from the owning node to Target.
type LinkEdge struct {
	Target Ref    // resolved against the owning document
	Text   string // anchor text, escapes decoded
}

// Metadata is the descriptive part of a loaded document.
type Metadata struct {
	Title      string
	Brief      string
	Place      string
	POV        string
	Status     Status
	Characters []string
	Attributes map[string]any // all front-matter fields, as decoded
}

// Node is one entry of a [Graph]: either a loaded document or an error.
type Node struct {
	Ref Ref
	Metadata
	Edges []LinkEdge
	Error ErrorKind // empty for loaded documents
}

// NewDocumentNode builds a loaded-document node. Characters are ordered with
// [OrderCharacters] and an empty status becomes [StatusFinal].
func NewDocumentNode(ref Ref, meta Metadata, edges []LinkEdge) *Node {
	meta.Characters = OrderCharacters(meta.Characters, meta.POV)
	if meta.Status == "" {
		meta.Status = StatusFinal
	}
	if meta.Attributes == nil {
		meta.Attributes = map[string]any{}
	}
	if edges == nil {
		edges = []LinkEdge{}
	}
	return &Node{Ref: ref, Metadata: meta, Edges: edges}
}

// NewErrorNode builds a node for a document that could not be loaded.
func NewErrorNode(ref Ref, kind ErrorKind) *Node {
	return &Node{Ref: ref, Error: kind}
}

// IsError reports whether the node records a load failure.
func (n *Node) IsError() bool { return n.Error != "" }

// DisplayTitle returns the brief, else the title, else the file name with
// its extension stripped.
func (n *Node) DisplayTitle() string {
	switch {
	case n.Brief != "":
		return n.Brief
	case n.Title != "":
		return n.Title
	default:
		return n.Ref.Stem()
	}
}

// OrderCharacters deduplicates names in first-seen order and moves pov, if
// non-empty, to the front. Empty names are dropped.
func OrderCharacters(names []string, pov string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, len(names)+1)
	if pov != "" {
		seen.Add(pov)
		out = append(out, pov)
	}
	for _, name := range names {
		if name == "" || !seen.Add(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
