package graphml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/facewalk/core"
	"github.com/katalvlaran/facewalk/geom"
	"github.com/katalvlaran/facewalk/validate"
)

type document struct {
	XMLName xml.Name `xml:"graphml"`
	Keys    []key    `xml:"key"`
	Graph   graph    `xml:"graph"`
}

type key struct {
	ID       string `xml:"id,attr"`
	AttrName string `xml:"attr.name,attr"`
}

type graph struct {
	Nodes []node `xml:"node"`
	Edges []edge `xml:"edge"`
}

type node struct {
	ID   string `xml:"id,attr"`
	Data []data `xml:"data"`
}

type data struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type edge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// Load parses a GraphML-subset document from r and returns the
// positions/edges pair it describes, after running validate.Check over
// it. Node ids map to core.RawEdge indices by first-appearance order in
// the <graph> element's <node> list.
func Load(r io.Reader) ([]geom.Point, []core.RawEdge, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("graphml: decode: %w", err)
	}

	attrByKey := make(map[string]string, len(doc.Keys))
	for _, k := range doc.Keys {
		attrByKey[k.ID] = k.AttrName
	}

	idToIndex := make(map[string]int, len(doc.Graph.Nodes))
	positions := make([]geom.Point, len(doc.Graph.Nodes))
	for i, n := range doc.Graph.Nodes {
		idToIndex[n.ID] = i

		var haveX, haveY bool
		var p geom.Point
		for _, d := range n.Data {
			attr := attrByKey[d.Key]
			v, err := strconv.ParseFloat(d.Value, 64)
			if err != nil {
				continue
			}
			switch attr {
			case "x":
				p.X, haveX = v, true
			case "y":
				p.Y, haveY = v, true
			}
		}
		if !haveX || !haveY {
			return nil, nil, fmt.Errorf("graphml: node %q: %w", n.ID, ErrMissingCoordinate)
		}
		positions[i] = p
	}

	edges := make([]core.RawEdge, len(doc.Graph.Edges))
	for i, e := range doc.Graph.Edges {
		src, ok := idToIndex[e.Source]
		if !ok {
			return nil, nil, fmt.Errorf("graphml: edge %d source %q: %w", i, e.Source, ErrUnknownEdgeEndpoint)
		}
		dst, ok := idToIndex[e.Target]
		if !ok {
			return nil, nil, fmt.Errorf("graphml: edge %d target %q: %w", i, e.Target, ErrUnknownEdgeEndpoint)
		}
		edges[i] = core.RawEdge{A: src, B: dst}
	}

	if err := validate.Check(positions, edges); err != nil {
		return nil, nil, fmt.Errorf("graphml: %w", err)
	}

	return positions, edges, nil
}
