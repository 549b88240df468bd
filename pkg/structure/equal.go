package structure

import (
	"math"
	"reflect"
)

// Equal reports whether a and b are observationally equal.
//
// Elements are equal when they are the same kind of element with equal ids.
// Properties compare key and value. Paths compare label sets and objects
// position by position. Numbers compare by value regardless of width, so
// int32(1) equals int64(1) and NaN equals NaN. Slices and maps compare
// element-wise with the same rules; anything else falls back to
// reflect.DeepEqual.
func Equal(a, b any) bool {
	a, b = deref(a), deref(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if ka, ida, ok := elementKey(a); ok {
		kb, idb, ok := elementKey(b)
		return ok && ka == kb && Equal(ida, idb)
	}

	switch x := a.(type) {
	case Property:
		y, ok := b.(Property)
		return ok && x.Key == y.Key && Equal(x.Value, y.Value)
	case Path:
		y, ok := b.(Path)
		return ok && equalPath(x, y)
	case LabelSet:
		y, ok := b.(LabelSet)
		return ok && equalLabels(x, y)
	}

	if na, ok := number(a); ok {
		nb, ok := number(b)
		return ok && na.equal(nb)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Slice, reflect.Array:
		if vb.Kind() != reflect.Slice && vb.Kind() != reflect.Array {
			return false
		}
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !Equal(va.Index(i).Interface(), vb.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Map:
		if vb.Kind() != reflect.Map || va.Len() != vb.Len() {
			return false
		}
		if va.Type().Key() != vb.Type().Key() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !Equal(iter.Value().Interface(), other.Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}

// SameID reports whether two element identifiers denote the same element.
func SameID(a, b any) bool {
	return Equal(a, b)
}

func deref(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		return rv.Elem().Interface()
	}
	return v
}

func elementKey(v any) (kind string, id any, ok bool) {
	switch e := v.(type) {
	case Vertex:
		return "vertex", e.ID, true
	case Edge:
		return "edge", e.ID, true
	case VertexProperty:
		return "vertexProperty", e.ID, true
	}
	return "", nil, false
}

func equalPath(a, b Path) bool {
	if len(a.Labels) != len(b.Labels) || len(a.Objects) != len(b.Objects) {
		return false
	}
	for i := range a.Labels {
		if !equalLabels(a.Labels[i], b.Labels[i]) {
			return false
		}
	}
	for i := range a.Objects {
		if !Equal(a.Objects[i], b.Objects[i]) {
			return false
		}
	}
	return true
}

func equalLabels(a, b LabelSet) bool {
	if len(a) != len(b) {
		return false
	}
	for l := range a {
		if !b.Has(l) {
			return false
		}
	}
	return true
}

// numeric is a width-independent view of a Go number.
type numeric struct {
	isFloat bool
	isUint  bool
	i       int64
	u       uint64
	f       float64
}

func number(v any) (numeric, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numeric{i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u <= math.MaxInt64 {
			return numeric{i: int64(u)}, true
		}
		return numeric{isUint: true, u: u}, true
	case reflect.Float32, reflect.Float64:
		return numeric{isFloat: true, f: rv.Float()}, true
	}
	return numeric{}, false
}

func (n numeric) float() float64 {
	switch {
	case n.isFloat:
		return n.f
	case n.isUint:
		return float64(n.u)
	default:
		return float64(n.i)
	}
}

func (n numeric) equal(o numeric) bool {
	if n.isFloat || o.isFloat {
		x, y := n.float(), o.float()
		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
		return x == y
	}
	if n.isUint || o.isUint {
		return n.isUint == o.isUint && n.u == o.u
	}
	return n.i == o.i
}
