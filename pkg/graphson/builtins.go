package graphson

import (
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/graphson/pkg/process"
	"github.com/matzehuels/graphson/pkg/structure"
)

// registerBuiltins installs the built-in type set. It runs once, from Default.
func registerBuiltins(r *Registry) {
	serializers := []struct {
		t reflect.Type
		s Serializer
	}{
		{TypeOf[int8](), int32Serializer},
		{TypeOf[int16](), int32Serializer},
		{TypeOf[int32](), int32Serializer},
		{TypeOf[uint8](), smallUintSerializer},
		{TypeOf[uint16](), smallUintSerializer},
		{TypeOf[int](), widthSerializer},
		{TypeOf[uint32](), widthSerializer},
		{TypeOf[int64](), int64Serializer},
		{TypeOf[uint](), uint64Serializer},
		{TypeOf[uint64](), uint64Serializer},
		{TypeOf[uintptr](), uint64Serializer},
		{TypeOf[float32](), floatSerializer},
		{TypeOf[float64](), doubleSerializer},
		{TypeOf[uuid.UUID](), uuidSerializer},
		{TypeOf[time.Time](), dateSerializer},

		{TypeOf[structure.Vertex](), vertexSerializer},
		{TypeOf[structure.Edge](), edgeSerializer},
		{TypeOf[structure.VertexProperty](), vertexPropertySerializer},
		{TypeOf[structure.Property](), propertySerializer},
		{TypeOf[structure.Path](), pathSerializer},

		{TypeOf[process.Bytecode](), bytecodeSerializer},
		{TypeOf[process.P](), pSerializer},
		{TypeOf[process.Binding](), bindingSerializer},
		{TypeOf[process.Lambda](), lambdaSerializer},
		{TypeOf[process.Traverser](), traverserSerializer},

		// Interfaces, consulted after every concrete type.
		{TypeOf[process.Traversal](), bytecodeSerializer},
		{TypeOf[process.Strategy](), strategySerializer},
		{TypeOf[process.Enum](), enumSerializer},
	}
	for _, e := range serializers {
		must(r.RegisterSerializer(e.t, e.s))
	}

	deserializers := map[string]DeserializerFunc{
		Int32Type:          deserializeInt32,
		Int64Type:          deserializeInt64,
		FloatType:          deserializeFloat,
		DoubleType:         deserializeDouble,
		UUIDType:           deserializeUUID,
		DateType:           deserializeDate,
		VertexType:         deserializeVertex,
		EdgeType:           deserializeEdge,
		VertexPropertyType: deserializeVertexProperty,
		PropertyType:       deserializeProperty,
		PathType:           deserializePath,
		TraverserType:      deserializeTraverser,
	}
	for _, enumType := range process.EnumTypes() {
		deserializers[DefaultAliases.Wire(enumType)] = enumDeserializer(enumType)
	}
	for name, d := range deserializers {
		must(r.RegisterDeserializer(FormatTag(DefaultPrefix, name), d))
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
