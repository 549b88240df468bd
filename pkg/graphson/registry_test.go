package graphson

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/matzehuels/graphson/pkg/errors"
	"github.com/matzehuels/graphson/pkg/structure"
)

type named interface{ Name() string }

type titled interface {
	named
	Title() string
}

type sized interface{ Size() int }

type book struct{}

func (book) Name() string  { return "book" }
func (book) Title() string { return "title" }
func (book) Size() int     { return 1 }

type money struct{ Cents int64 }

type cents int32

// tagging returns a serializer that writes a fixed tag with a null payload.
func tagging(name string) Serializer {
	return SerializerFunc(func(*Writer, any) (Node, error) {
		return TypedValueWithPrefix("test", name, nil), nil
	})
}

func lookupTag(t *testing.T, r *Registry, v any) string {
	t.Helper()
	s, target, ok := r.Serializer(v)
	require.True(t, ok, "no serializer for %T", v)
	n, err := s.Serialize(nil, target)
	require.NoError(t, err)
	return n.(Tagged).Tag
}

func TestRegistryInterfaceOrdering(t *testing.T) {
	tests := []struct {
		name  string
		order []reflect.Type
		want  string
	}{
		{"specific registered last", []reflect.Type{TypeOf[named](), TypeOf[titled]()}, "test:titled"},
		{"specific registered first", []reflect.Type{TypeOf[titled](), TypeOf[named]()}, "test:titled"},
		{"unrelated, named last", []reflect.Type{TypeOf[sized](), TypeOf[named]()}, "test:named"},
		{"unrelated, sized last", []reflect.Type{TypeOf[named](), TypeOf[sized]()}, "test:sized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			for _, typ := range tt.order {
				require.NoError(t, r.RegisterSerializer(typ, tagging(typ.Name())))
			}
			assert.Equal(t, tt.want, lookupTag(t, r, book{}))
		})
	}
}

func TestRegistryExactBeatsInterface(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterSerializer(TypeOf[named](), tagging("named")))
	require.NoError(t, r.RegisterSerializer(TypeOf[book](), tagging("book")))

	assert.Equal(t, "test:book", lookupTag(t, r, book{}))
	assert.Equal(t, "test:book", lookupTag(t, r, &book{}))
}

func TestRegistryKindFallback(t *testing.T) {
	r := NewRegistry()
	var seen any
	require.NoError(t, r.RegisterSerializer(TypeOf[int32](), SerializerFunc(func(_ *Writer, v any) (Node, error) {
		seen = v
		return Null, nil
	})))

	s, target, ok := r.Serializer(cents(4))
	require.True(t, ok)
	_, err := s.Serialize(nil, target)
	require.NoError(t, err)
	assert.Equal(t, int32(4), seen)

	_, _, ok = r.Serializer(money{})
	assert.False(t, ok)
}

func TestRegistrySeal(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Sealed())
	r.Seal()
	assert.True(t, r.Sealed())

	err := r.RegisterSerializer(TypeOf[money](), tagging("money"))
	assert.Equal(t, gerrors.ErrCodeRegistrySealed, gerrors.GetCode(err))
	err = r.RegisterDeserializer("test:Money", DeserializerFunc(func(*Reader, Node) (any, error) { return nil, nil }))
	assert.Equal(t, gerrors.ErrCodeRegistrySealed, gerrors.GetCode(err))

	clone := r.Clone()
	assert.False(t, clone.Sealed())
	assert.NoError(t, clone.RegisterSerializer(TypeOf[money](), tagging("money")))
	_, _, ok := r.Serializer(money{})
	assert.False(t, ok, "registering on a clone must not touch the original")
}

func TestRegistryValidation(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, gerrors.ErrCodeInvalidInput, gerrors.GetCode(r.RegisterSerializer(nil, tagging("x"))))
	assert.Equal(t, gerrors.ErrCodeInvalidInput, gerrors.GetCode(r.RegisterDeserializer("test:X", nil)))

	d := DeserializerFunc(func(*Reader, Node) (any, error) { return nil, nil })
	for _, tag := range []string{"", "Vertex", "g:", ":Vertex", "g:Ver tex"} {
		assert.Equal(t, gerrors.ErrCodeInvalidTag, gerrors.GetCode(r.RegisterDeserializer(tag, d)), "tag %q", tag)
	}
}

func TestGlobalRegistrySealsOnUse(t *testing.T) {
	_, err := NewWriter()
	require.NoError(t, err)
	assert.True(t, Default().Sealed())

	err = RegisterSerializer(TypeOf[money](), tagging("money"))
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeRegistrySealed))
	err = RegisterDeserializer("test:Money", DeserializerFunc(func(*Reader, Node) (any, error) { return nil, nil }))
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeRegistrySealed))
}

func TestOverlayDoesNotMutateGlobal(t *testing.T) {
	moneySerializer := SerializerFunc(func(w *Writer, v any) (Node, error) {
		return w.fields().add("cents", v.(money).Cents).envelope("Money")
	})
	moneyDeserializer := DeserializerFunc(func(r *Reader, payload Node) (any, error) {
		m, err := object("g:Money", payload)
		if err != nil {
			return nil, err
		}
		c, err := r.required("g:Money", m, "cents")
		if err != nil {
			return nil, err
		}
		return money{Cents: c.(int64)}, nil
	})

	w := newTestWriter(t, WithSerializer(TypeOf[money](), moneySerializer))
	r := newTestReader(t, WithDeserializer("g:Money", moneyDeserializer))

	text := write(t, w, money{Cents: 250})
	assert.Equal(t, `{"@type":"g:Money","@value":{"cents":{"@type":"g:Int64","@value":250}}}`, text)
	assert.Equal(t, money{Cents: 250}, read(t, r, text))

	_, _, ok := Default().Serializer(money{})
	assert.False(t, ok)
	_, ok = Default().Deserializer("g:Money")
	assert.False(t, ok)

	_, err := newTestWriter(t).WriteObject(money{})
	var unsupported *UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestOverlayOverridesBuiltin(t *testing.T) {
	w := newTestWriter(t, WithSerializer(TypeOf[structure.Vertex](), tagging("vertex")))
	assert.Equal(t, `{"@type":"test:vertex","@value":null}`, write(t, w, structure.NewVertex(1)))
}

func TestWriterOnPrivateRegistry(t *testing.T) {
	reg := NewRegistry()
	w := newTestWriter(t, WithRegistry(reg))
	assert.True(t, reg.Sealed())

	// without numeric serializers, numbers pass through untyped
	assert.Equal(t, `[1,2.5]`, write(t, w, []any{1, 2.5}))
}

func TestRegistryTags(t *testing.T) {
	tags := Default().Tags()
	assert.IsIncreasing(t, tags)
	for _, tag := range []string{"g:Vertex", "g:Edge", "g:Int32", "g:Double", "g:Scope", "g:Traverser", "g:UUID"} {
		assert.Contains(t, tags, tag)
	}
	assert.NotContains(t, tags, "g:Bytecode")
	assert.NotContains(t, tags, "g:Lambda")

	types := Default().Types()
	assert.Contains(t, types, "structure.Vertex")
	assert.Contains(t, types, "process.Enum")
}
