package structure

import "fmt"

// Default labels assigned by a server when an element carries none.
const (
	DefaultVertexLabel = "vertex"
	DefaultEdgeLabel   = "edge"
)

// Element is implemented by every identifiable graph element.
type Element interface {
	ElementID() any
	ElementLabel() string
}

// Vertex is a graph vertex identified by ID.
type Vertex struct {
	ID    any
	Label string
}

// NewVertex returns a vertex with the default label.
func NewVertex(id any) Vertex {
	return Vertex{ID: id, Label: DefaultVertexLabel}
}

func (v Vertex) ElementID() any       { return v.ID }
func (v Vertex) ElementLabel() string { return v.Label }

func (v Vertex) String() string {
	return fmt.Sprintf("v[%v]", v.ID)
}

// Edge is a directed edge from OutV to InV.
// Endpoints are embedded by value and carry only id and label.
type Edge struct {
	ID    any
	Label string
	OutV  Vertex
	InV   Vertex
}

func (e Edge) ElementID() any       { return e.ID }
func (e Edge) ElementLabel() string { return e.Label }

func (e Edge) String() string {
	return fmt.Sprintf("e[%v][%v-%s->%v]", e.ID, e.OutV.ID, e.Label, e.InV.ID)
}

// VertexProperty is a property owned by a vertex. Its Label is the property key.
// Vertex is nil when the owner is unknown.
type VertexProperty struct {
	ID     any
	Label  string
	Value  any
	Vertex *Vertex
}

func (vp VertexProperty) ElementID() any       { return vp.ID }
func (vp VertexProperty) ElementLabel() string { return vp.Label }

// Key returns the property key, which for vertex properties is the label.
func (vp VertexProperty) Key() string { return vp.Label }

func (vp VertexProperty) String() string {
	return fmt.Sprintf("vp[%s->%s]", vp.Label, abbreviate(vp.Value))
}

// Property is a key/value pair attached to an Edge, a VertexProperty, or nothing.
type Property struct {
	Key     string
	Value   any
	Element Element
}

func (p Property) String() string {
	return fmt.Sprintf("p[%s->%s]", p.Key, abbreviate(p.Value))
}

// abbreviate keeps String forms of long values readable.
func abbreviate(v any) string {
	s := fmt.Sprint(v)
	if len(s) > 20 {
		return s[:20]
	}
	return s
}
