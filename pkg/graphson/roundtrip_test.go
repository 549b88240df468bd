package graphson

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphson/pkg/process"
	"github.com/matzehuels/graphson/pkg/structure"
)

func roundTripValues() map[string]any {
	owner := structure.Vertex{ID: int64(1), Label: "person"}
	edge := structure.Edge{
		ID:    int64(7),
		Label: "knows",
		OutV:  owner,
		InV:   structure.Vertex{ID: int64(2), Label: "person"},
	}
	vp := structure.VertexProperty{ID: int64(9), Label: "name", Value: "marko", Vertex: &owner}

	return map[string]any{
		"vertex":                  structure.Vertex{ID: int32(1), Label: "person"},
		"vertex string id":        structure.Vertex{ID: "abc", Label: "software"},
		"edge":                    edge,
		"vertex property":         vp,
		"orphan vertex property":  structure.VertexProperty{ID: "p", Label: "age", Value: int32(29)},
		"property on edge":        structure.Property{Key: "weight", Value: 0.5, Element: edge},
		"property on vertex prop": structure.Property{Key: "since", Value: int32(2010), Element: vp},
		"property without owner":  structure.Property{Key: "k", Value: "v"},
		"path": structure.Path{
			Labels:  []structure.LabelSet{structure.NewLabelSet("a"), structure.NewLabelSet(), structure.NewLabelSet("b", "c")},
			Objects: []any{owner, edge, "name"},
		},
		"traverser":   process.Traverser{Object: "x", Bulk: 3},
		"int32":       int32(-12),
		"int64":       int64(1) << 40,
		"int64 small": int64(5),
		"float":       float32(1.5),
		"double":      3.25,
		"nan":         math.NaN(),
		"infinity":    math.Inf(-1),
		"uuid":        uuid.MustParse("41d2e28a-20a4-4ab0-b379-d810dede3786"),
		"date":        time.UnixMilli(1481750076295).UTC(),
		"list":        []any{int32(1), "two", structure.NewVertex("v")},
		"map":         map[string]any{"a": int64(1), "b": []any{true, nil}},
	}
}

func TestRoundTrip(t *testing.T) {
	w := newTestWriter(t)
	r := newTestReader(t)

	for name, v := range roundTripValues() {
		t.Run(name, func(t *testing.T) {
			text, err := w.WriteObject(v)
			require.NoError(t, err)

			got, err := r.ReadObject(text)
			require.NoError(t, err)
			assert.True(t, structure.Equal(v, got), "round trip of %v gave %v (via %s)", v, got, text)
		})
	}
}

func TestRoundTripPreservesWidth(t *testing.T) {
	w := newTestWriter(t)
	r := newTestReader(t)

	tests := []struct {
		in   any
		want any
	}{
		{int32(5), int32(5)},
		{int64(5), int64(5)},
		{5, int32(5)},
		{uint16(5), int32(5)},
		{float32(0.25), float32(0.25)},
		{0.25, 0.25},
	}
	for _, tt := range tests {
		text, err := w.WriteObject(tt.in)
		require.NoError(t, err)
		got, err := r.ReadObject(text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "via %s", text)
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	data, err := Marshal(structure.Vertex{ID: int32(1), Label: "person"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"@type":"g:Vertex","@value":{"id":{"@type":"g:Int32","@value":1},"label":"person"}}`, string(data))

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, structure.Vertex{ID: int32(1), Label: "person"}, got)

	_, err = Marshal(make(chan int))
	assert.Error(t, err)
}

func TestConcurrentUse(t *testing.T) {
	w := newTestWriter(t)
	r := newTestReader(t)
	values := roundTripValues()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, v := range values {
				text, err := w.WriteObject(v)
				if !assert.NoError(t, err) {
					return
				}
				_, err = r.ReadObject(text)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
