package loader

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/contactnet/contact"
	"github.com/katalvlaran/contactnet/core"
	"github.com/shopspring/decimal"
)

// GEXF 1.x document subset: attribute declarations, nodes with attvalues,
// edges with an optional weight and attvalues. Tags carry no namespace so
// both the 1.2draft and 1.3 namespaces decode.
type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	DefaultEdgeType string           `xml:"defaultedgetype,attr"`
	Attributes      []gexfAttributes `xml:"attributes"`
	Nodes           []gexfNode       `xml:"nodes>node"`
	Edges           []gexfEdge       `xml:"edges>edge"`
}

type gexfAttributes struct {
	Class string          `xml:"class,attr"`
	Attrs []gexfAttribute `xml:"attribute"`
}

type gexfAttribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
}

type gexfAttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfNode struct {
	ID        string         `xml:"id,attr"`
	Label     string         `xml:"label,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

type gexfEdge struct {
	ID        string         `xml:"id,attr"`
	Source    string         `xml:"source,attr"`
	Target    string         `xml:"target,attr"`
	Weight    string         `xml:"weight,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue"`
}

// titles maps attribute id → lower-cased title for one attribute class.
// Undeclared ids resolve to themselves.
type titles map[string]string

func (t titles) of(id string) string {
	if title, ok := t[id]; ok {
		return title
	}
	return strings.ToLower(strings.TrimSpace(id))
}

func (g *gexfGraph) titlesFor(class string) titles {
	out := titles{}
	for _, block := range g.Attributes {
		if !strings.EqualFold(block.Class, class) {
			continue
		}
		for _, a := range block.Attrs {
			out[a.ID] = strings.ToLower(strings.TrimSpace(a.Title))
		}
	}
	return out
}

// ReadGEXF decodes a pre-aggregated GEXF graph into an Aggregation.
//
// Every declared node is kept, linked or not. Node attvalues titled
// class/classname fill Class, sex/gender fill Sex, household fills Household
// and age fills Age. The edge weight is the attvalue titled
// Options.WeightAttribute when present, else the weight attribute, else 1.
// Edges are undirected; repeated edges between one pair are summed.
//
// Errors wrap ErrMalformedGraph with name; self-loops additionally wrap
// contact.ErrSelfPair.
func ReadGEXF(r io.Reader, name string, opts ...Option) (*contact.Aggregation, error) {
	o := resolve(opts)

	var doc gexfDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedGraph, name, err)
	}

	nodeTitles := doc.Graph.titlesFor("node")
	nodes := make([]contact.Node, 0, len(doc.Graph.Nodes))
	for i, n := range doc.Graph.Nodes {
		id := strings.TrimSpace(n.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: %s: node %d has no id", ErrMalformedGraph, name, i)
		}
		attrs, err := nodeAttributes(n.AttValues, nodeTitles)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: node %q: %v", ErrMalformedGraph, name, id, err)
		}
		nodes = append(nodes, contact.Node{ID: id, Attrs: attrs})
	}

	edgeTitles := doc.Graph.titlesFor("edge")
	weightTitle := strings.ToLower(o.WeightAttribute)
	links := make([]contact.Link, 0, len(doc.Graph.Edges))
	for i, e := range doc.Graph.Edges {
		w, err := edgeWeight(e, edgeTitles, weightTitle)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: edge %d: %v", ErrMalformedGraph, name, i, err)
		}
		links = append(links, contact.Link{
			Source: strings.TrimSpace(e.Source),
			Target: strings.TrimSpace(e.Target),
			Weight: w,
		})
	}

	agg, err := contact.Collapse(links, nodes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedGraph, name, err)
	}

	return agg, nil
}

// ReadGEXFFile opens path and decodes it with ReadGEXF.
func ReadGEXFFile(path string, opts ...Option) (*contact.Aggregation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadGEXF(f, path, opts...)
}

func nodeAttributes(values []gexfAttValue, t titles) (core.Attributes, error) {
	var a core.Attributes
	for _, v := range values {
		val := strings.TrimSpace(v.Value)
		switch t.of(v.For) {
		case "class", "classname":
			a.Class = val
		case "sex", "gender":
			a.Sex = val
		case "household":
			a.Household = val
		case "age":
			if val == "" {
				continue
			}
			age, err := parseInt(val)
			if err != nil {
				return a, fmt.Errorf("age: %v", err)
			}
			a.Age = &age
		}
	}
	return a, nil
}

func edgeWeight(e gexfEdge, t titles, title string) (decimal.Decimal, error) {
	raw := ""
	for _, v := range e.AttValues {
		if t.of(v.For) == title {
			raw = strings.TrimSpace(v.Value)
			break
		}
	}
	if raw == "" {
		raw = strings.TrimSpace(e.Weight)
	}
	if raw == "" {
		return decimal.NewFromInt(1), nil
	}
	w, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("weight %q is not numeric", raw)
	}
	return w, nil
}
