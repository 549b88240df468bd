package graphson

import (
	"encoding/json"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphson/pkg/observability"
)

// Collection is implemented by set-like values. Writers encode them as a
// sequence of their items, in the order Items returns them.
type Collection interface {
	Items() []any
}

// Writer encodes domain values into GraphSON. A Writer holds a sealed
// snapshot of its registry and is safe for concurrent use.
type Writer struct {
	registry       *Registry
	aliases        *Aliases
	logger         *log.Logger
	lambdaLanguage string
	hostLanguages  []string
}

// NewWriter returns a Writer over the global registry plus any overlay
// given in opts. Building the first Writer seals the global registry.
func NewWriter(opts ...Option) (*Writer, error) {
	c := newConfig(opts)
	reg, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	return &Writer{
		registry:       reg,
		aliases:        c.aliases,
		logger:         c.logger,
		lambdaLanguage: c.lambdaLanguage,
		hostLanguages:  c.hostLanguages,
	}, nil
}

// Registry returns the writer's sealed registry snapshot.
func (w *Writer) Registry() *Registry { return w.registry }

// WriteObject encodes v as compact GraphSON text.
func (w *Writer) WriteObject(v any) (string, error) {
	n, err := w.ToTree(v)
	if err != nil {
		observability.Codec().OnError("encode", err)
		return "", err
	}
	data, err := EncodeJSON(n)
	if err != nil {
		observability.Codec().OnError("encode", err)
		return "", err
	}
	return string(data), nil
}

// ToTree encodes v into a Node tree:
//
//   - nil becomes null, and booleans pass through bare
//   - values with a registered serializer become its output
//   - Collection values, slices and arrays become sequences
//   - maps become mappings sorted by encoded key
//   - strings and json.Number pass through unchanged
//
// Anything else fails with [*UnsupportedTypeError].
func (w *Writer) ToTree(v any) (Node, error) {
	switch x := v.(type) {
	case nil:
		return Null, nil
	case Node:
		return x, nil
	case json.Number:
		return Scalar{V: x}, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Bool {
		return Scalar{V: rv.Bool()}, nil
	}

	if s, target, ok := w.registry.Serializer(v); ok {
		n, err := s.Serialize(w, target)
		if err != nil {
			return nil, err
		}
		if t, ok := n.(Tagged); ok {
			observability.Codec().OnEncode(t.Tag)
		}
		return n, nil
	}

	if c, ok := v.(Collection); ok {
		return w.sequence(c.Items())
	}

	switch rv.Kind() {
	case reflect.String:
		return Scalar{V: rv.String()}, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null, nil
		}
		return w.ToTree(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return w.sequence(items)
	case reflect.Map:
		return w.mapping(rv)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Scalar{V: v}, nil
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &UnsupportedTypeError{Value: v, Reason: "non-finite float without a serializer"}
		}
		return Scalar{V: v}, nil
	}
	return nil, &UnsupportedTypeError{Value: v}
}

func (w *Writer) sequence(items []any) (Node, error) {
	seq := make(Sequence, 0, len(items))
	for _, item := range items {
		n, err := w.ToTree(item)
		if err != nil {
			return nil, err
		}
		seq = append(seq, n)
	}
	return seq, nil
}

// mapping encodes keys and values. Keys that do not encode to a plain string
// are replaced by the compact JSON text of their encoded form.
func (w *Writer) mapping(rv reflect.Value) (Node, error) {
	m := make(Mapping, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		kn, err := w.ToTree(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		key, err := mappingKey(kn)
		if err != nil {
			return nil, err
		}
		vn, err := w.ToTree(iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		m = append(m, Field{Key: key, Value: vn})
	}
	slices.SortFunc(m, func(a, b Field) int { return strings.Compare(a.Key, b.Key) })
	return m, nil
}

func mappingKey(n Node) (string, error) {
	if s, ok := n.(Scalar); ok {
		if str, ok := s.V.(string); ok {
			return str, nil
		}
	}
	data, err := EncodeJSON(n)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// fields builds an ordered envelope payload, stopping at the first error.
type fields struct {
	w   *Writer
	m   Mapping
	err error
}

func (w *Writer) fields() *fields { return &fields{w: w} }

// add encodes v and appends it under key.
func (f *fields) add(key string, v any) *fields {
	if f.err != nil {
		return f
	}
	n, err := f.w.ToTree(v)
	if err != nil {
		f.err = err
		return f
	}
	f.m = append(f.m, Field{Key: key, Value: n})
	return f
}

// raw appends n under key without encoding.
func (f *fields) raw(key string, n Node) *fields {
	if f.err == nil {
		f.m = append(f.m, Field{Key: key, Value: n})
	}
	return f
}

func (f *fields) mapping() (Mapping, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.m == nil {
		return Mapping{}, nil
	}
	return f.m, nil
}

func (f *fields) envelope(name string) (Node, error) {
	m, err := f.mapping()
	if err != nil {
		return nil, err
	}
	return TypedValue(name, m), nil
}
