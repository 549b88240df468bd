package graphson

import (
	"strings"

	"github.com/matzehuels/graphson/pkg/errors"
)

// Envelope keys.
const (
	TypeKey  = "@type"
	ValueKey = "@value"
)

// DefaultPrefix is the tag prefix of every built-in type.
const DefaultPrefix = "g"

// Kind identifies the variant of a Node.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
	KindTagged
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindTagged:
		return "tagged"
	default:
		return "unknown"
	}
}

// Node is the intermediate tree between domain values and JSON text.
// It is a closed sum type: [Scalar], [Sequence], [Mapping], and [Tagged].
type Node interface {
	Kind() Kind
}

// Scalar is a JSON leaf. V is nil, bool, string, json.Number, or a Go
// integer or float value.
type Scalar struct {
	V any
}

// Sequence is an ordered JSON array.
type Sequence []Node

// Field is one key/value pair of a Mapping.
type Field struct {
	Key   string
	Value Node
}

// Mapping is a JSON object whose field order is preserved.
type Mapping []Field

// Tagged is a type envelope: {"@type": Tag, "@value": Value}.
type Tagged struct {
	Tag   string
	Value Node
}

func (Scalar) Kind() Kind   { return KindScalar }
func (Sequence) Kind() Kind { return KindSequence }
func (Mapping) Kind() Kind  { return KindMapping }
func (Tagged) Kind() Kind   { return KindTagged }

// Null is the JSON null leaf.
var Null = Scalar{}

// Get returns the value of the last field named key.
func (m Mapping) Get(key string) (Node, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return nil, false
}

// Has reports whether a field named key is present.
func (m Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// With returns m with a field appended.
func (m Mapping) With(key string, value Node) Mapping {
	return append(m, Field{Key: key, Value: value})
}

// FormatTag joins a prefix and a type name into a wire tag.
func FormatTag(prefix, name string) string {
	return prefix + ":" + name
}

// SplitTag splits a wire tag into prefix and type name.
func SplitTag(tag string) (prefix, name string, err error) {
	if err := errors.ValidateTag(tag); err != nil {
		return "", "", err
	}
	prefix, name, _ = strings.Cut(tag, ":")
	return prefix, name, nil
}

// TypedValue returns the envelope for a built-in type name.
func TypedValue(name string, value Node) Tagged {
	return TypedValueWithPrefix(DefaultPrefix, name, value)
}

// TypedValueWithPrefix returns the envelope for a type name under prefix.
// A nil value becomes an explicit null payload.
func TypedValueWithPrefix(prefix, name string, value Node) Tagged {
	if value == nil {
		value = Null
	}
	return Tagged{Tag: FormatTag(prefix, name), Value: value}
}

// AsEnvelope reports whether n is a type envelope and returns its tag and
// payload. Both Tagged nodes and parsed mappings carrying a string "@type"
// field qualify; a missing "@value" yields a null payload.
func AsEnvelope(n Node) (tag string, payload Node, ok bool) {
	switch v := n.(type) {
	case Tagged:
		return v.Tag, v.Value, true
	case Mapping:
		t, found := v.Get(TypeKey)
		if !found {
			return "", nil, false
		}
		s, isScalar := t.(Scalar)
		if !isScalar {
			return "", nil, false
		}
		str, isString := s.V.(string)
		if !isString {
			return "", nil, false
		}
		payload, found := v.Get(ValueKey)
		if !found {
			payload = Null
		}
		return str, payload, true
	}
	return "", nil, false
}
