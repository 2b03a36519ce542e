// Package io provides JSON import and export for document graphs.
//
// # Overview
//
// A crawl can be saved as JSON and rendered again later without touching
// the source documents, or handed to other tools. The format keeps every
// node in discovery order, so a graph read back with [ReadJSON] renders
// exactly like the original.
//
// # JSON Format
//
//	{
//	  "nodes": [
//	    {
//	      "ref": "file:///wiki/a.md",
//	      "title": "Arrival",
//	      "place": "Tavern",
//	      "status": "final",
//	      "characters": ["Alice", "Bob"],
//	      "attributes": {"title": "Arrival", "place": "Tavern"},
//	      "edges": [{"target": "file:///wiki/b.md", "text": "Next"}]
//	    },
//	    {"ref": "file:///wiki/b.md", "error": "NotFound"}
//	  ],
//	  "characters": ["Alice", "Bob"]
//	}
//
// # Node Fields
//
// Required:
//   - ref: absolute document reference
//
// Optional:
//   - title, brief, place, pov: front-matter strings
//   - status: narrative status (defaults to "final" on import)
//   - characters: ordered character list
//   - attributes: all front-matter fields verbatim
//   - edges: outgoing links with their anchor text
//   - error: error kind for documents that could not be loaded
//
// A node carries either edges or an error, never both.
//
// # Export
//
//	err := io.WriteJSON(g, extractor.Characters(), os.Stdout)
//	err := io.ExportJSON(g, characters, "map.json")
//
// # Import
//
//	g, characters, err := io.ImportJSON("map.json")
package io
