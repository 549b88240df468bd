package graphson

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphson/pkg/errors"
	"github.com/matzehuels/graphson/pkg/observability"
)

// Reader decodes GraphSON into domain values. A Reader holds a sealed
// snapshot of its registry and is safe for concurrent use.
type Reader struct {
	registry *Registry
	aliases  *Aliases
	logger   *log.Logger
}

// NewReader returns a Reader over the global registry plus any overlay
// given in opts. Building the first Reader seals the global registry.
func NewReader(opts ...Option) (*Reader, error) {
	c := newConfig(opts)
	reg, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	return &Reader{registry: reg, aliases: c.aliases, logger: c.logger}, nil
}

// Registry returns the reader's sealed registry snapshot.
func (r *Reader) Registry() *Registry { return r.registry }

// ReadObject parses GraphSON text and decodes it.
func (r *Reader) ReadObject(text string) (any, error) {
	n, err := ParseJSON([]byte(text))
	if err != nil {
		observability.Codec().OnError("decode", err)
		return nil, err
	}
	v, err := r.ToObject(n)
	if err != nil {
		observability.Codec().OnError("decode", err)
		return nil, err
	}
	return v, nil
}

// ToObject decodes a Node tree. Envelopes with a registered tag go to their
// deserializer. Envelopes with an unknown tag decode as plain mappings of
// "@type" and "@value". Mappings become map[string]any, sequences []any,
// and untyped JSON numbers int64 or float64.
func (r *Reader) ToObject(n Node) (any, error) {
	if tag, payload, ok := AsEnvelope(n); ok {
		if d, found := r.registry.Deserializer(tag); found {
			v, err := d.Deserialize(r, payload)
			if err != nil {
				return nil, err
			}
			observability.Codec().OnDecode(tag)
			return v, nil
		}
		r.logger.Debug("no deserializer for tag, decoding as object", "tag", tag)
		observability.Codec().OnUnknownTag(tag)
	}

	switch x := n.(type) {
	case nil:
		return nil, nil
	case Scalar:
		return untypedScalar(x.V)
	case Sequence:
		out := make([]any, len(x))
		for i, item := range x {
			v, err := r.ToObject(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case Mapping:
		out := make(map[string]any, len(x))
		for _, f := range x {
			v, err := r.ToObject(f.Value)
			if err != nil {
				return nil, err
			}
			out[f.Key] = v
		}
		return out, nil
	case Tagged:
		payload, err := r.ToObject(x.Value)
		if err != nil {
			return nil, err
		}
		return map[string]any{TypeKey: x.Tag, ValueKey: payload}, nil
	}
	return nil, errors.New(errors.ErrCodeInternal, "unknown node type %T", n)
}

// untypedScalar turns an untyped JSON number into int64 or float64. Integer
// literals beyond int64 are rejected rather than rounded.
func untypedScalar(v any) (any, error) {
	num, ok := v.(json.Number)
	if !ok {
		return v, nil
	}
	i, err := num.Int64()
	if err == nil {
		return i, nil
	}
	if !strings.ContainsAny(string(num), ".eE") {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "integer %s out of int64 range", string(num))
	}
	f, err := num.Float64()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidJSON, err, "number %q", string(num))
	}
	return f, nil
}

// object returns payload as a mapping or a malformed envelope error.
func object(tag string, payload Node) (Mapping, error) {
	m, ok := payload.(Mapping)
	if !ok {
		return nil, badField(tag, "", "payload must be an object")
	}
	return m, nil
}

// required decodes the named field, failing when it is absent.
func (r *Reader) required(tag string, m Mapping, key string) (any, error) {
	n, ok := m.Get(key)
	if !ok {
		return nil, missingField(tag, key)
	}
	return r.ToObject(n)
}

// optional decodes the named field, returning nil when it is absent.
func (r *Reader) optional(m Mapping, key string) (any, error) {
	n, ok := m.Get(key)
	if !ok {
		return nil, nil
	}
	return r.ToObject(n)
}

// label reads a string field, falling back to def when absent. An empty def
// makes the field required.
func (r *Reader) label(tag string, m Mapping, key, def string) (string, error) {
	n, ok := m.Get(key)
	if !ok {
		if def == "" {
			return "", missingField(tag, key)
		}
		return def, nil
	}
	v, err := r.ToObject(n)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", badField(tag, key, "must be a string")
	}
	return s, nil
}
