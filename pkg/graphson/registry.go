package graphson

import (
	"reflect"
	"slices"
	"sync"

	"github.com/matzehuels/graphson/pkg/errors"
)

// Serializer turns a domain value into a Node, usually a [Tagged] envelope.
// Serializers recurse into nested values through [Writer.ToTree].
type Serializer interface {
	Serialize(w *Writer, v any) (Node, error)
}

// SerializerFunc adapts a function to [Serializer].
type SerializerFunc func(w *Writer, v any) (Node, error)

func (f SerializerFunc) Serialize(w *Writer, v any) (Node, error) { return f(w, v) }

// Deserializer rebuilds a domain value from an envelope payload.
// Deserializers recurse into nested payloads through [Reader.ToObject].
type Deserializer interface {
	Deserialize(r *Reader, payload Node) (any, error)
}

// DeserializerFunc adapts a function to [Deserializer].
type DeserializerFunc func(r *Reader, payload Node) (any, error)

func (f DeserializerFunc) Deserialize(r *Reader, payload Node) (any, error) { return f(r, payload) }

// Registry maps Go types to serializers and wire tags to deserializers.
//
// Serializer lookup for a value of type T is deterministic:
//
//  1. a serializer registered for exactly T
//  2. if T is a non-nil pointer, a serializer registered for exactly *T's element type
//  3. the interface chain: the first registered interface T implements. An
//     interface that implements another registered interface is always
//     consulted before it; otherwise later registrations come first
//  4. if T is a named numeric type, the serializer of its underlying basic type
//
// A Registry is safe for concurrent use. Once sealed it rejects registration.
type Registry struct {
	mu            sync.RWMutex
	sealed        bool
	exact         map[reflect.Type]Serializer
	chain         []chainEntry
	deserializers map[string]Deserializer
}

type chainEntry struct {
	iface      reflect.Type
	serializer Serializer
}

// NewRegistry returns an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{
		exact:         make(map[reflect.Type]Serializer),
		deserializers: make(map[string]Deserializer),
	}
}

// RegisterSerializer registers s for values of type t. If t is an interface
// type, s serves every type implementing it (see [Registry] for ordering).
// Registering a type again replaces its serializer.
func (r *Registry) RegisterSerializer(t reflect.Type, s Serializer) error {
	if t == nil || s == nil {
		return errors.New(errors.ErrCodeInvalidInput, "serializer registration needs a type and a serializer")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return errors.New(errors.ErrCodeRegistrySealed, "cannot register serializer for %s: registry is sealed", t)
	}

	if t.Kind() != reflect.Interface {
		r.exact[t] = s
		return nil
	}
	r.insertChain(t, s)
	return nil
}

// insertChain keeps every interface ahead of the interfaces it implements
// and puts t ahead of unrelated earlier entries.
func (r *Registry) insertChain(t reflect.Type, s Serializer) {
	for i, e := range r.chain {
		if e.iface == t {
			r.chain[i].serializer = s
			return
		}
	}
	pos := 0
	for i, e := range r.chain {
		if e.iface.Implements(t) {
			pos = i + 1
		}
	}
	r.chain = slices.Insert(r.chain, pos, chainEntry{iface: t, serializer: s})
}

// RegisterDeserializer registers d for the wire tag.
// Registering a tag again replaces its deserializer.
func (r *Registry) RegisterDeserializer(tag string, d Deserializer) error {
	if d == nil {
		return errors.New(errors.ErrCodeInvalidInput, "deserializer for %q is nil", tag)
	}
	if err := errors.ValidateTag(tag); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return errors.New(errors.ErrCodeRegistrySealed, "cannot register deserializer for %q: registry is sealed", tag)
	}
	r.deserializers[tag] = d
	return nil
}

// Seal makes the registry read-only. Sealing is idempotent.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether the registry rejects registration.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Clone returns an unsealed copy. The copy shares serializer values but not tables.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := NewRegistry()
	for t, s := range r.exact {
		out.exact[t] = s
	}
	out.chain = slices.Clone(r.chain)
	for tag, d := range r.deserializers {
		out.deserializers[tag] = d
	}
	return out
}

// Serializer returns the serializer for v and the value it should be
// applied to, which differs from v when a pointer was dereferenced or a
// named numeric type was converted to its basic type.
func (r *Registry) Serializer(v any) (Serializer, any, bool) {
	if v == nil {
		return nil, nil, false
	}
	t := reflect.TypeOf(v)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.exact[t]; ok {
		return s, v, true
	}
	if t.Kind() == reflect.Pointer {
		rv := reflect.ValueOf(v)
		if !rv.IsNil() {
			if s, ok := r.exact[t.Elem()]; ok {
				return s, rv.Elem().Interface(), true
			}
		}
	}
	for _, e := range r.chain {
		if t.Implements(e.iface) {
			return e.serializer, v, true
		}
	}
	if basic, ok := basicNumericTypes[t.Kind()]; ok && basic != t {
		if s, ok := r.exact[basic]; ok {
			return s, reflect.ValueOf(v).Convert(basic).Interface(), true
		}
	}
	return nil, nil, false
}

// Deserializer returns the deserializer registered for tag.
func (r *Registry) Deserializer(tag string) (Deserializer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.deserializers[tag]
	return d, ok
}

// Tags returns every registered wire tag in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.deserializers))
	for tag := range r.deserializers {
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}

// Types returns the names of every type with a serializer: concrete types
// sorted by name, followed by interfaces in lookup order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.exact)+len(r.chain))
	for t := range r.exact {
		out = append(out, t.String())
	}
	slices.Sort(out)
	for _, e := range r.chain {
		out = append(out, e.iface.String())
	}
	return out
}

var basicNumericTypes = map[reflect.Kind]reflect.Type{
	reflect.Int:     reflect.TypeFor[int](),
	reflect.Int8:    reflect.TypeFor[int8](),
	reflect.Int16:   reflect.TypeFor[int16](),
	reflect.Int32:   reflect.TypeFor[int32](),
	reflect.Int64:   reflect.TypeFor[int64](),
	reflect.Uint:    reflect.TypeFor[uint](),
	reflect.Uint8:   reflect.TypeFor[uint8](),
	reflect.Uint16:  reflect.TypeFor[uint16](),
	reflect.Uint32:  reflect.TypeFor[uint32](),
	reflect.Uint64:  reflect.TypeFor[uint64](),
	reflect.Uintptr: reflect.TypeFor[uintptr](),
	reflect.Float32: reflect.TypeFor[float32](),
	reflect.Float64: reflect.TypeFor[float64](),
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the global registry holding the built-in types. It is
// populated once, on first call, and sealed when the first Writer or Reader
// snapshots it.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

// RegisterSerializer extends the global registry. It fails with
// REGISTRY_SEALED once any Writer or Reader has been built from it.
func RegisterSerializer(t reflect.Type, s Serializer) error {
	return Default().RegisterSerializer(t, s)
}

// RegisterDeserializer extends the global registry. It fails with
// REGISTRY_SEALED once any Writer or Reader has been built from it.
func RegisterDeserializer(tag string, d Deserializer) error {
	return Default().RegisterDeserializer(tag, d)
}

// TypeOf returns the reflect.Type of T, for use with RegisterSerializer.
// For an interface type it returns the interface itself.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
