package structure

import (
	"fmt"
	"testing"
)

func TestString(t *testing.T) {
	marko := Vertex{ID: 1, Label: "person"}
	vadas := Vertex{ID: 2, Label: "person"}

	tests := []struct {
		name string
		in   fmt.Stringer
		want string
	}{
		{"vertex", marko, "v[1]"},
		{"edge", Edge{ID: 7, Label: "knows", OutV: marko, InV: vadas}, "e[7][1-knows->2]"},
		{"vertex property", VertexProperty{ID: 0, Label: "name", Value: "marko", Vertex: &marko}, "vp[name->marko]"},
		{"property", Property{Key: "weight", Value: 0.5}, "p[weight->0.5]"},
		{"long value", Property{Key: "bio", Value: "a very long biography text"}, "p[bio->a very long biograph]"},
		{"path", Path{Labels: []LabelSet{{}, {}}, Objects: []any{marko, "marko"}}, "path[v[1], marko]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewVertex(t *testing.T) {
	v := NewVertex(int64(4))
	if v.Label != DefaultVertexLabel {
		t.Errorf("Label = %q, want %q", v.Label, DefaultVertexLabel)
	}
}

func TestPathGet(t *testing.T) {
	p := Path{
		Labels:  []LabelSet{NewLabelSet("a"), NewLabelSet("b", "c"), NewLabelSet("a")},
		Objects: []any{"x", "y", "z"},
	}

	if got := p.Get("b"); got != "y" {
		t.Errorf("Get(b) = %v, want y", got)
	}
	if got, ok := p.Get("a").([]any); !ok || len(got) != 2 || got[0] != "x" || got[1] != "z" {
		t.Errorf("Get(a) = %v, want [x z]", p.Get("a"))
	}
	if got := p.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestLabelSetItems(t *testing.T) {
	s := NewLabelSet("b", "a", "c")
	items := s.Items()
	want := []any{"a", "b", "c"}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("Items() = %v, want %v", items, want)
		}
	}
}
