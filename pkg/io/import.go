package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/wikimap/pkg/wiki"
)

// ErrErrorWithEdges reports a node that declares both an error and edges.
var ErrErrorWithEdges = errors.New("node has both an error and edges")

// ReadJSON decodes a graph written by [WriteJSON]. It returns the graph and
// the character list.
//
// ReadJSON returns an error if the JSON is malformed, a reference is not
// absolute, a reference appears twice, or a node has both an error and
// edges. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*wiki.Graph, []string, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}

	g := wiki.NewGraph()
	for _, n := range data.Nodes {
		nd, err := n.toNode()
		if err != nil {
			return nil, nil, fmt.Errorf("node %s: %w", n.Ref, err)
		}
		if err := g.Add(nd); err != nil {
			return nil, nil, fmt.Errorf("node %s: %w", n.Ref, err)
		}
	}
	return g, data.Characters, nil
}

func (n node) toNode() (*wiki.Node, error) {
	ref, err := wiki.Parse(n.Ref)
	if err != nil {
		return nil, err
	}
	if n.Error != "" {
		if len(n.Edges) > 0 {
			return nil, ErrErrorWithEdges
		}
		return wiki.NewErrorNode(ref, wiki.ErrorKind(n.Error)), nil
	}

	edges := make([]wiki.LinkEdge, 0, len(n.Edges))
	for _, e := range n.Edges {
		target, err := wiki.Parse(e.Target)
		if err != nil {
			return nil, fmt.Errorf("edge to %s: %w", e.Target, err)
		}
		edges = append(edges, wiki.LinkEdge{Target: target, Text: e.Text})
	}
	meta := wiki.Metadata{
		Title:      n.Title,
		Brief:      n.Brief,
		Place:      n.Place,
		POV:        n.POV,
		Status:     wiki.ParseStatus(n.Status),
		Characters: n.Characters,
		Attributes: n.Attributes,
	}
	return wiki.NewDocumentNode(ref, meta, edges), nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph and
// character list.
func ImportJSON(path string) (*wiki.Graph, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
