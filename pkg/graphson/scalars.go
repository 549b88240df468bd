package graphson

import (
	"time"

	"github.com/google/uuid"
)

const (
	UUIDType = "UUID"
	DateType = "Date"
)

var uuidSerializer = SerializerFunc(func(_ *Writer, v any) (Node, error) {
	return TypedValue(UUIDType, Scalar{V: v.(uuid.UUID).String()}), nil
})

// dateSerializer writes milliseconds since the Unix epoch.
var dateSerializer = SerializerFunc(func(_ *Writer, v any) (Node, error) {
	return TypedValue(DateType, Scalar{V: v.(time.Time).UnixMilli()}), nil
})

func deserializeUUID(_ *Reader, payload Node) (any, error) {
	tag := FormatTag(DefaultPrefix, UUIDType)
	s, ok := payload.(Scalar)
	if !ok {
		return nil, badField(tag, "", "payload must be a string")
	}
	str, ok := s.V.(string)
	if !ok {
		return nil, badField(tag, "", "payload must be a string")
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return nil, &MalformedEnvelopeError{Tag: tag, Reason: "invalid UUID", Cause: err}
	}
	return id, nil
}

func deserializeDate(_ *Reader, payload Node) (any, error) {
	ms, err := intPayload(FormatTag(DefaultPrefix, DateType), payload)
	if err != nil {
		return nil, err
	}
	return time.UnixMilli(ms).UTC(), nil
}
