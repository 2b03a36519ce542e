package wiki

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidRef is returned by [Graph.Add] when the node has no reference.
	ErrInvalidRef = errors.New("node reference must not be empty")

	// ErrDuplicateRef is returned by [Graph.Add] when the reference is
	// already a key. Each document is visited at most once.
	ErrDuplicateRef = errors.New("duplicate document reference")
)

// Graph maps document references to nodes, iterating in insertion order.
//
// The zero value is not usable; use [NewGraph]. Graph is not safe for
// concurrent use without external synchronization.
type Graph struct {
	order []Ref
	nodes map[Ref]*Node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[Ref]*Node)}
}

// Add appends n to the graph.
func (g *Graph) Add(n *Node) error {
	if n == nil || n.Ref == "" {
		return ErrInvalidRef
	}
	if _, exists := g.nodes[n.Ref]; exists {
		return ErrDuplicateRef
	}
	g.nodes[n.Ref] = n
	g.order = append(g.order, n.Ref)
	return nil
}

// Node returns the node for ref.
func (g *Graph) Node(ref Ref) (*Node, bool) {
	n, ok := g.nodes[ref]
	return n, ok
}

// Has reports whether ref is a key of the graph.
func (g *Graph) Has(ref Ref) bool {
	_, ok := g.nodes[ref]
	return ok
}

// Nodes returns all nodes in discovery order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, ref := range g.order {
		out[i] = g.nodes[ref]
	}
	return out
}

// Refs returns all keys in discovery order.
func (g *Graph) Refs() []Ref { return slices.Clone(g.order) }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the total number of links recorded on loaded nodes.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.Edges)
	}
	return total
}

// ErrorCount returns the number of error nodes.
func (g *Graph) ErrorCount() int {
	total := 0
	for _, n := range g.nodes {
		if n.IsError() {
			total++
		}
	}
	return total
}
