package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/wikimap/pkg/wiki"
)

type graph struct {
	Nodes      []node   `json:"nodes"`
	Characters []string `json:"characters"`
}

type node struct {
	Ref        string         `json:"ref"`
	Title      string         `json:"title,omitempty"`
	Brief      string         `json:"brief,omitempty"`
	Place      string         `json:"place,omitempty"`
	Status     string         `json:"status,omitempty"`
	POV        string         `json:"pov,omitempty"`
	Characters []string       `json:"characters,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Error      string         `json:"error,omitempty"`
	Edges      []edge         `json:"edges,omitempty"`
}

type edge struct {
	Target string `json:"target"`
	Text   string `json:"text"`
}

// WriteJSON encodes g and the accumulated character list as JSON and
// writes it to w. Nodes appear in discovery order.
func WriteJSON(g *wiki.Graph, characters []string, w io.Writer) error {
	out := graph{
		Nodes:      make([]node, 0, g.Len()),
		Characters: characters,
	}
	if out.Characters == nil {
		out.Characters = []string{}
	}

	for _, n := range g.Nodes() {
		if n.IsError() {
			out.Nodes = append(out.Nodes, node{Ref: n.Ref.String(), Error: string(n.Error)})
			continue
		}
		nd := node{
			Ref:        n.Ref.String(),
			Title:      n.Title,
			Brief:      n.Brief,
			Place:      n.Place,
			Status:     string(n.Status),
			POV:        n.POV,
			Characters: n.Characters,
			Attributes: n.Attributes,
		}
		for _, e := range n.Edges {
			nd.Edges = append(nd.Edges, edge{Target: e.Target.String(), Text: e.Text})
		}
		out.Nodes = append(out.Nodes, nd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *wiki.Graph, characters []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(g, characters, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
