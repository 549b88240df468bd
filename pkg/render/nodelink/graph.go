package nodelink

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/graphson/pkg/process"
	"github.com/matzehuels/graphson/pkg/structure"
)

// Node is a vertex found in decoded values.
type Node struct {
	ID         string
	Label      string
	Properties map[string]any
}

// Link is an edge between two nodes.
type Link struct {
	ID    string
	From  string
	To    string
	Label string
}

// Graph accumulates the vertices and edges reachable from decoded values.
// Nodes and links keep first-seen order.
type Graph struct {
	nodes map[string]*Node
	order []string
	links []Link
	seen  map[string]bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: map[string]*Node{}, seen: map[string]bool{}}
}

// Collect builds a graph from decoded values.
func Collect(values ...any) *Graph {
	g := NewGraph()
	for _, v := range values {
		g.Add(v)
	}
	return g
}

// Add walks v and records every element it contains. Paths, traversers,
// slices, and maps (in key order) are searched recursively; other values
// are ignored.
func (g *Graph) Add(v any) {
	switch x := v.(type) {
	case structure.Vertex:
		g.vertex(x)
	case *structure.Vertex:
		if x != nil {
			g.vertex(*x)
		}
	case structure.Edge:
		g.edge(x)
	case *structure.Edge:
		if x != nil {
			g.edge(*x)
		}
	case structure.VertexProperty:
		g.vertexProperty(x)
	case structure.Property:
		g.Add(x.Element)
	case structure.Path:
		for _, o := range x.Objects {
			g.Add(o)
		}
	case process.Traverser:
		g.Add(x.Object)
	case []any:
		for _, item := range x {
			g.Add(item)
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(x)) {
			g.Add(x[k])
		}
	}
}

// Nodes returns the nodes in first-seen order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}
	return out
}

// Links returns the links in first-seen order.
func (g *Graph) Links() []Link { return g.links }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

func (g *Graph) vertex(v structure.Vertex) *Node {
	id := fmt.Sprint(v.ID)
	if n, ok := g.nodes[id]; ok {
		if n.Label == structure.DefaultVertexLabel && v.Label != "" {
			n.Label = v.Label
		}
		return n
	}
	n := &Node{ID: id, Label: v.Label, Properties: map[string]any{}}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

func (g *Graph) edge(e structure.Edge) {
	from := g.vertex(e.OutV)
	to := g.vertex(e.InV)
	id := fmt.Sprint(e.ID)
	if g.seen[id] {
		return
	}
	g.seen[id] = true
	g.links = append(g.links, Link{ID: id, From: from.ID, To: to.ID, Label: e.Label})
}

func (g *Graph) vertexProperty(vp structure.VertexProperty) {
	if vp.Vertex == nil {
		return
	}
	g.vertex(*vp.Vertex).Properties[vp.Key()] = vp.Value
}
