package graphson

import (
	"encoding/json"
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"

	"github.com/matzehuels/graphson/pkg/errors"
)

// jsonAPI streams Node trees. Field order comes from the tree, so map key
// sorting only matters for values handed to WriteVal.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// EncodeJSON renders n as compact JSON text.
func EncodeJSON(n Node) ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	if err := writeNode(stream, n); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, stream.Error, "write JSON")
	}

	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// ParseJSON parses JSON text into a Node tree. Objects become [Mapping]
// with source field order, numbers stay [json.Number] scalars.
func ParseJSON(data []byte) (Node, error) {
	iter := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(iter)

	n := readNode(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, iter.Error, "parse JSON")
	}
	if iter.Error == nil {
		iter.WhatIsNext()
		if iter.Error != io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidJSON, "unexpected data after top-level value")
		}
	}
	return n, nil
}

func writeNode(s *jsoniter.Stream, n Node) error {
	switch v := n.(type) {
	case nil:
		s.WriteNil()
	case Scalar:
		return writeScalar(s, v.V)
	case Sequence:
		s.WriteArrayStart()
		for i, item := range v {
			if i > 0 {
				s.WriteMore()
			}
			if err := writeNode(s, item); err != nil {
				return err
			}
		}
		s.WriteArrayEnd()
	case Mapping:
		s.WriteObjectStart()
		for i, f := range v {
			if i > 0 {
				s.WriteMore()
			}
			s.WriteObjectField(f.Key)
			if err := writeNode(s, f.Value); err != nil {
				return err
			}
		}
		s.WriteObjectEnd()
	case Tagged:
		s.WriteObjectStart()
		s.WriteObjectField(TypeKey)
		s.WriteString(v.Tag)
		s.WriteMore()
		s.WriteObjectField(ValueKey)
		if err := writeNode(s, v.Value); err != nil {
			return err
		}
		s.WriteObjectEnd()
	default:
		return &UnsupportedTypeError{Value: n}
	}
	return nil
}

func writeScalar(s *jsoniter.Stream, v any) error {
	switch x := v.(type) {
	case nil:
		s.WriteNil()
	case bool:
		s.WriteBool(x)
	case string:
		s.WriteString(x)
	case json.Number:
		if !isJSONNumber(string(x)) {
			return errors.New(errors.ErrCodeInvalidJSON, "invalid number literal %q", string(x))
		}
		s.WriteRaw(string(x))
	case int:
		s.WriteInt(x)
	case int8:
		s.WriteInt8(x)
	case int16:
		s.WriteInt16(x)
	case int32:
		s.WriteInt32(x)
	case int64:
		s.WriteInt64(x)
	case uint:
		s.WriteUint(x)
	case uint8:
		s.WriteUint8(x)
	case uint16:
		s.WriteUint16(x)
	case uint32:
		s.WriteUint32(x)
	case uint64:
		s.WriteUint64(x)
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return &UnsupportedTypeError{Value: v, Reason: "non-finite float outside an envelope"}
		}
		s.WriteFloat32(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &UnsupportedTypeError{Value: v, Reason: "non-finite float outside an envelope"}
		}
		s.WriteFloat64(x)
	default:
		return &UnsupportedTypeError{Value: v, Reason: "not a JSON scalar"}
	}
	return nil
}

func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

func readNode(iter *jsoniter.Iterator) Node {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		return Scalar{V: iter.ReadString()}
	case jsoniter.NumberValue:
		return Scalar{V: iter.ReadNumber()}
	case jsoniter.BoolValue:
		return Scalar{V: iter.ReadBool()}
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null
	case jsoniter.ArrayValue:
		seq := Sequence{}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			seq = append(seq, readNode(it))
			return it.Error == nil || it.Error == io.EOF
		})
		return seq
	case jsoniter.ObjectValue:
		m := Mapping{}
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			m = append(m, Field{Key: key, Value: readNode(it)})
			return it.Error == nil || it.Error == io.EOF
		})
		return m
	default:
		iter.ReportError("graphson", "expected a JSON value")
		return nil
	}
}
