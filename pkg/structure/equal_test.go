package structure

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	v1 := Vertex{ID: int32(1), Label: "person"}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil value", nil, 1, false},
		{"vertex same id different label", v1, Vertex{ID: int32(1), Label: "vertex"}, true},
		{"vertex id width", v1, Vertex{ID: int64(1)}, true},
		{"vertex pointer", v1, &Vertex{ID: int32(1)}, true},
		{"vertex different id", v1, Vertex{ID: int32(2)}, false},
		{"vertex vs edge", v1, Edge{ID: int32(1)}, false},
		{"edge", Edge{ID: "e1", OutV: v1}, Edge{ID: "e1"}, true},
		{"vertex property", VertexProperty{ID: int64(3), Label: "name"}, VertexProperty{ID: int64(3)}, true},
		{"property", Property{Key: "weight", Value: 0.5}, Property{Key: "weight", Value: 0.5}, true},
		{"property value differs", Property{Key: "weight", Value: 0.5}, Property{Key: "weight", Value: 0.4}, false},
		{"int widths", int32(7), int64(7), true},
		{"int vs float", int64(2), float64(2), true},
		{"float32 vs float32", float32(1.5), float32(1.5), true},
		{"nan", math.NaN(), math.NaN(), true},
		{"large uint", uint64(math.MaxUint64), uint64(math.MaxUint64), true},
		{"large uint vs int", uint64(math.MaxUint64), int64(-1), false},
		{"string", "a", "a", true},
		{"bool vs int", true, 1, false},
		{"slices", []any{int32(1), "x"}, []any{int64(1), "x"}, true},
		{"slices length", []any{1}, []any{1, 2}, false},
		{"maps", map[string]any{"a": int32(1)}, map[string]any{"a": int64(1)}, true},
		{"maps missing key", map[string]any{"a": 1}, map[string]any{"b": 1}, false},
		{"label sets", NewLabelSet("a", "b"), NewLabelSet("b", "a"), true},
		{"label sets differ", NewLabelSet("a"), NewLabelSet("b"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualPath(t *testing.T) {
	a := Path{
		Labels:  []LabelSet{NewLabelSet("a"), NewLabelSet()},
		Objects: []any{Vertex{ID: int32(1)}, "marko"},
	}
	b := Path{
		Labels:  []LabelSet{NewLabelSet("a"), NewLabelSet()},
		Objects: []any{Vertex{ID: int64(1), Label: "person"}, "marko"},
	}
	if !Equal(a, b) {
		t.Error("paths with equal labels and objects should be equal")
	}

	b.Labels[1] = NewLabelSet("b")
	if Equal(a, b) {
		t.Error("paths with different labels should not be equal")
	}
}
