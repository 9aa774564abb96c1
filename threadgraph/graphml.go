package threadgraph

import (
	"encoding/xml"
	"io"
	"strconv"
)

const graphMLNamespace = "http://graphml.graphdrawing.org/xmlns"

type gmlDocument struct {
	XMLName xml.Name `xml:"graphml"`
	XMLNS   string   `xml:"xmlns,attr"`
	Keys    []gmlKey `xml:"key"`
	Graph   gmlGraph `xml:"graph"`
}

type gmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type gmlGraph struct {
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []gmlNode `xml:"node"`
	Edges       []gmlEdge `xml:"edge"`
}

type gmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []gmlData `xml:"data"`
}

type gmlEdge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

type gmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// WriteGraphML writes g as a directed GraphML document. Nodes carry a
// boolean "seed" attribute; nodes and edges appear in Vertices()/Edges() order.
func WriteGraphML(w io.Writer, g *Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	doc := gmlDocument{
		XMLNS: graphMLNamespace,
		Keys:  []gmlKey{{ID: "d0", For: "node", AttrName: "seed", AttrType: "boolean"}},
		Graph: gmlGraph{EdgeDefault: "directed"},
	}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, gmlNode{
			ID:   id,
			Data: []gmlData{{Key: "d0", Value: strconv.FormatBool(v.Seed)}},
		})
	}
	for _, e := range g.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, gmlEdge{ID: e.ID, Source: e.From, Target: e.To})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")

	return err
}
