package graphson

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Numeric wire type names.
const (
	Int32Type  = "Int32"
	Int64Type  = "Int64"
	FloatType  = "Float"
	DoubleType = "Double"
)

// Special float payloads.
const (
	nanPayload    = "NaN"
	posInfPayload = "Infinity"
	negInfPayload = "-Infinity"
)

// int32Serializer serves types that always fit 32 bits.
var int32Serializer = SerializerFunc(func(_ *Writer, v any) (Node, error) {
	return TypedValue(Int32Type, Scalar{V: int32(reflect.ValueOf(v).Int())}), nil
})

// smallUintSerializer serves uint8 and uint16.
var smallUintSerializer = SerializerFunc(func(_ *Writer, v any) (Node, error) {
	return TypedValue(Int32Type, Scalar{V: int32(reflect.ValueOf(v).Uint())}), nil
})

// widthSerializer serves int and uint32: Int32 unless the value needs 64 bits.
var widthSerializer = SerializerFunc(func(_ *Writer, v any) (Node, error) {
	rv := reflect.ValueOf(v)
	var n int64
	if rv.CanInt() {
		n = rv.Int()
	} else {
		n = int64(rv.Uint())
	}
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return TypedValue(Int32Type, Scalar{V: int32(n)}), nil
	}
	return TypedValue(Int64Type, Scalar{V: n}), nil
})

// int64Serializer serves int64, which is Int64 regardless of magnitude.
var int64Serializer = SerializerFunc(func(_ *Writer, v any) (Node, error) {
	return TypedValue(Int64Type, Scalar{V: reflect.ValueOf(v).Int()}), nil
})

// uint64Serializer serves uint, uint64 and uintptr.
var uint64Serializer = SerializerFunc(func(_ *Writer, v any) (Node, error) {
	u := reflect.ValueOf(v).Uint()
	if u > math.MaxInt64 {
		return nil, &UnsupportedTypeError{Value: v, Reason: "value exceeds Int64 range"}
	}
	return TypedValue(Int64Type, Scalar{V: int64(u)}), nil
})

var floatSerializer = SerializerFunc(func(_ *Writer, v any) (Node, error) {
	f := reflect.ValueOf(v).Float()
	if p, ok := specialFloat(f); ok {
		return TypedValue(FloatType, p), nil
	}
	return TypedValue(FloatType, Scalar{V: float32(f)}), nil
})

var doubleSerializer = SerializerFunc(func(_ *Writer, v any) (Node, error) {
	f := reflect.ValueOf(v).Float()
	if p, ok := specialFloat(f); ok {
		return TypedValue(DoubleType, p), nil
	}
	return TypedValue(DoubleType, Scalar{V: f}), nil
})

func specialFloat(f float64) (Node, bool) {
	switch {
	case math.IsNaN(f):
		return Scalar{V: nanPayload}, true
	case math.IsInf(f, 1):
		return Scalar{V: posInfPayload}, true
	case math.IsInf(f, -1):
		return Scalar{V: negInfPayload}, true
	}
	return nil, false
}

func deserializeInt32(_ *Reader, payload Node) (any, error) {
	n, err := intPayload(FormatTag(DefaultPrefix, Int32Type), payload)
	if err != nil {
		return nil, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, badField(FormatTag(DefaultPrefix, Int32Type), "", "value out of 32-bit range")
	}
	return int32(n), nil
}

func deserializeInt64(_ *Reader, payload Node) (any, error) {
	return intPayload(FormatTag(DefaultPrefix, Int64Type), payload)
}

func deserializeFloat(_ *Reader, payload Node) (any, error) {
	f, err := floatPayload(FormatTag(DefaultPrefix, FloatType), payload)
	if err != nil {
		return nil, err
	}
	return float32(f), nil
}

func deserializeDouble(_ *Reader, payload Node) (any, error) {
	return floatPayload(FormatTag(DefaultPrefix, DoubleType), payload)
}

func intPayload(tag string, payload Node) (int64, error) {
	s, ok := payload.(Scalar)
	if !ok {
		return 0, badField(tag, "", "payload must be a number")
	}
	n, ok := asInt64(s.V)
	if !ok {
		return 0, badField(tag, "", "payload must be an integer")
	}
	return n, nil
}

func floatPayload(tag string, payload Node) (float64, error) {
	s, ok := payload.(Scalar)
	if !ok {
		return 0, badField(tag, "", "payload must be a number")
	}
	f, ok := asFloat64(s.V)
	if !ok {
		return 0, badField(tag, "", "payload must be a number")
	}
	return f, nil
}

// asInt64 converts integral values of any numeric representation.
func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true
		}
		f, err := x.Float64()
		if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case nil, bool, string:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return rv.Int(), true
	case rv.CanUint():
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	case rv.CanFloat():
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

// asFloat64 converts numbers and the special float payload strings.
func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		return f, err == nil
	case string:
		switch x {
		case nanPayload:
			return math.NaN(), true
		case posInfPayload:
			return math.Inf(1), true
		case negInfPayload:
			return math.Inf(-1), true
		}
		return 0, false
	case nil, bool:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}
