package graphson

import (
	"github.com/matzehuels/graphson/pkg/structure"
)

// Structure wire type names.
const (
	VertexType         = "Vertex"
	EdgeType           = "Edge"
	VertexPropertyType = "VertexProperty"
	PropertyType       = "Property"
	PathType           = "Path"
)

var vertexSerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	vx := v.(structure.Vertex)
	return w.fields().
		add("id", vx.ID).
		add("label", vx.Label).
		envelope(VertexType)
})

var edgeSerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	e := v.(structure.Edge)
	return w.fields().
		add("id", e.ID).
		add("outV", e.OutV.ID).
		add("outVLabel", e.OutV.Label).
		add("label", e.Label).
		add("inV", e.InV.ID).
		add("inVLabel", e.InV.Label).
		envelope(EdgeType)
})

var vertexPropertySerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	vp := v.(structure.VertexProperty)
	f := w.fields().
		add("id", vp.ID).
		add("label", vp.Label).
		add("value", vp.Value)
	if vp.Vertex != nil {
		f.add("vertex", vp.Vertex.ID)
	}
	return f.envelope(VertexPropertyType)
})

// propertySerializer embeds a reference to the owning element: an edge as
// {id,label,outV,inV}, a vertex property as {id,label,value,vertex}.
var propertySerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	p := v.(structure.Property)
	f := w.fields().
		add("key", p.Key).
		add("value", p.Value)

	switch owner := p.Element.(type) {
	case nil:
	case structure.Edge:
		ref, err := edgeRef(w, owner)
		if err != nil {
			return nil, err
		}
		f.raw("edge", ref)
	case *structure.Edge:
		ref, err := edgeRef(w, *owner)
		if err != nil {
			return nil, err
		}
		f.raw("edge", ref)
	case structure.VertexProperty:
		ref, err := vertexPropertyRef(w, owner)
		if err != nil {
			return nil, err
		}
		f.raw("vertexProperty", ref)
	case *structure.VertexProperty:
		ref, err := vertexPropertyRef(w, *owner)
		if err != nil {
			return nil, err
		}
		f.raw("vertexProperty", ref)
	default:
		return nil, &UnsupportedTypeError{Value: v, Reason: "property owner must be an edge or a vertex property"}
	}
	return f.envelope(PropertyType)
})

func edgeRef(w *Writer, e structure.Edge) (Node, error) {
	return w.fields().
		add("id", e.ID).
		add("label", e.Label).
		add("outV", e.OutV.ID).
		add("inV", e.InV.ID).
		mapping()
}

func vertexPropertyRef(w *Writer, vp structure.VertexProperty) (Node, error) {
	f := w.fields().
		add("id", vp.ID).
		add("label", vp.Label).
		add("value", vp.Value)
	if vp.Vertex != nil {
		f.add("vertex", vp.Vertex.ID)
	}
	return f.mapping()
}

var pathSerializer = SerializerFunc(func(w *Writer, v any) (Node, error) {
	p := v.(structure.Path)
	labels := make([]any, len(p.Labels))
	for i, set := range p.Labels {
		labels[i] = set
	}
	objects := p.Objects
	if objects == nil {
		objects = []any{}
	}
	return w.fields().
		add("labels", labels).
		add("objects", objects).
		envelope(PathType)
})

func deserializeVertex(r *Reader, payload Node) (any, error) {
	tag := FormatTag(DefaultPrefix, VertexType)
	m, err := object(tag, payload)
	if err != nil {
		return nil, err
	}
	id, err := r.required(tag, m, "id")
	if err != nil {
		return nil, err
	}
	label, err := r.label(tag, m, "label", structure.DefaultVertexLabel)
	if err != nil {
		return nil, err
	}
	return structure.Vertex{ID: id, Label: label}, nil
}

func deserializeEdge(r *Reader, payload Node) (any, error) {
	tag := FormatTag(DefaultPrefix, EdgeType)
	m, err := object(tag, payload)
	if err != nil {
		return nil, err
	}
	id, err := r.required(tag, m, "id")
	if err != nil {
		return nil, err
	}
	outV, err := r.required(tag, m, "outV")
	if err != nil {
		return nil, err
	}
	inV, err := r.required(tag, m, "inV")
	if err != nil {
		return nil, err
	}
	outLabel, err := r.label(tag, m, "outVLabel", structure.DefaultVertexLabel)
	if err != nil {
		return nil, err
	}
	label, err := r.label(tag, m, "label", structure.DefaultEdgeLabel)
	if err != nil {
		return nil, err
	}
	inLabel, err := r.label(tag, m, "inVLabel", structure.DefaultVertexLabel)
	if err != nil {
		return nil, err
	}
	return structure.Edge{
		ID:    id,
		Label: label,
		OutV:  structure.Vertex{ID: outV, Label: outLabel},
		InV:   structure.Vertex{ID: inV, Label: inLabel},
	}, nil
}

func deserializeVertexProperty(r *Reader, payload Node) (any, error) {
	tag := FormatTag(DefaultPrefix, VertexPropertyType)
	m, err := object(tag, payload)
	if err != nil {
		return nil, err
	}
	id, err := r.required(tag, m, "id")
	if err != nil {
		return nil, err
	}
	label, err := r.label(tag, m, "label", "")
	if err != nil {
		return nil, err
	}
	value, err := r.required(tag, m, "value")
	if err != nil {
		return nil, err
	}
	vp := structure.VertexProperty{ID: id, Label: label, Value: value}
	if m.Has("vertex") {
		owner, err := r.required(tag, m, "vertex")
		if err != nil {
			return nil, err
		}
		vx := structure.NewVertex(owner)
		vp.Vertex = &vx
	}
	return vp, nil
}

// deserializeProperty rebuilds the owner from its embedded reference, whose
// fields are decoded as a plain map first.
func deserializeProperty(r *Reader, payload Node) (any, error) {
	tag := FormatTag(DefaultPrefix, PropertyType)
	m, err := object(tag, payload)
	if err != nil {
		return nil, err
	}
	key, err := r.label(tag, m, "key", "")
	if err != nil {
		return nil, err
	}
	value, err := r.required(tag, m, "value")
	if err != nil {
		return nil, err
	}
	p := structure.Property{Key: key, Value: value}

	switch {
	case m.Has("edge"):
		ref, err := refFields(r, tag, m, "edge")
		if err != nil {
			return nil, err
		}
		e := structure.Edge{ID: ref["id"], Label: structure.DefaultEdgeLabel}
		if l, ok := ref["label"].(string); ok {
			e.Label = l
		}
		for _, k := range []string{"id", "outV", "inV"} {
			if _, ok := ref[k]; !ok {
				return nil, missingField(tag, "edge."+k)
			}
		}
		e.OutV = structure.NewVertex(ref["outV"])
		e.InV = structure.NewVertex(ref["inV"])
		p.Element = e
	case m.Has("vertexProperty"):
		ref, err := refFields(r, tag, m, "vertexProperty")
		if err != nil {
			return nil, err
		}
		for _, k := range []string{"id", "label"} {
			if _, ok := ref[k]; !ok {
				return nil, missingField(tag, "vertexProperty."+k)
			}
		}
		label, ok := ref["label"].(string)
		if !ok {
			return nil, badField(tag, "vertexProperty.label", "must be a string")
		}
		vp := structure.VertexProperty{ID: ref["id"], Label: label, Value: ref["value"]}
		if owner, ok := ref["vertex"]; ok {
			vx := structure.NewVertex(owner)
			vp.Vertex = &vx
		}
		p.Element = vp
	}
	return p, nil
}

func refFields(r *Reader, tag string, m Mapping, key string) (map[string]any, error) {
	v, err := r.required(tag, m, key)
	if err != nil {
		return nil, err
	}
	ref, ok := v.(map[string]any)
	if !ok {
		return nil, badField(tag, key, "must be an object")
	}
	return ref, nil
}

func deserializePath(r *Reader, payload Node) (any, error) {
	tag := FormatTag(DefaultPrefix, PathType)
	m, err := object(tag, payload)
	if err != nil {
		return nil, err
	}
	rawLabels, err := r.required(tag, m, "labels")
	if err != nil {
		return nil, err
	}
	rawObjects, err := r.required(tag, m, "objects")
	if err != nil {
		return nil, err
	}
	labelList, ok := rawLabels.([]any)
	if !ok {
		return nil, badField(tag, "labels", "must be an array")
	}
	objects, ok := rawObjects.([]any)
	if !ok {
		return nil, badField(tag, "objects", "must be an array")
	}

	labels := make([]structure.LabelSet, len(labelList))
	for i, entry := range labelList {
		names, ok := entry.([]any)
		if !ok {
			return nil, badField(tag, "labels", "entries must be arrays")
		}
		set := structure.NewLabelSet()
		for _, name := range names {
			s, ok := name.(string)
			if !ok {
				return nil, badField(tag, "labels", "label names must be strings")
			}
			set[s] = struct{}{}
		}
		labels[i] = set
	}
	return structure.Path{Labels: labels, Objects: objects}, nil
}
