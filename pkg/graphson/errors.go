package graphson

import (
	"fmt"

	"github.com/matzehuels/graphson/pkg/errors"
)

// UnsupportedTypeError is returned when a value has no serializer and is not
// a sequence, mapping, or JSON scalar.
type UnsupportedTypeError struct {
	Value  any
	Reason string // optional detail
}

func (e *UnsupportedTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("graphson: cannot encode %T: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("graphson: cannot encode %T", e.Value)
}

// Code returns [errors.ErrCodeUnsupportedType].
func (e *UnsupportedTypeError) Code() errors.Code { return errors.ErrCodeUnsupportedType }

// MalformedEnvelopeError is returned when a registered deserializer rejects
// its payload, typically because a required field is missing.
type MalformedEnvelopeError struct {
	Tag    string
	Field  string // empty when the payload as a whole is wrong
	Reason string
	Cause  error
}

func (e *MalformedEnvelopeError) Error() string {
	msg := "graphson: malformed " + e.Tag
	if e.Field != "" {
		msg += " field " + fmt.Sprintf("%q", e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *MalformedEnvelopeError) Unwrap() error { return e.Cause }

// Code returns [errors.ErrCodeMalformedEnvelope].
func (e *MalformedEnvelopeError) Code() errors.Code { return errors.ErrCodeMalformedEnvelope }

func missingField(tag, field string) error {
	return &MalformedEnvelopeError{Tag: tag, Field: field, Reason: "missing required field"}
}

func badField(tag, field, reason string) error {
	return &MalformedEnvelopeError{Tag: tag, Field: field, Reason: reason}
}
