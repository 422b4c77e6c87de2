package textdecode

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("undecodable bytes")
	// ErrUnsupportedType is matched by every *TypeError.
	ErrUnsupportedType = errors.New("unsupported input type")
)

// DecodeError reports the first byte span that could not be decoded.
type DecodeError struct {
	Encoding string
	Offset   int
	Bytes    []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s at offset %d as %s", EscapeBytes(e.Bytes), e.Offset, e.Encoding)
}

func (e *DecodeError) Unwrap() error { return ErrDecode }

// TypeError is returned when a value is neither text nor bytes.
type TypeError struct {
	Type reflect.Type
}

func (e *TypeError) Error() string {
	if e.Type == nil {
		return "expected string or []byte, got nil"
	}
	return fmt.Sprintf("expected string or []byte, got %s", e.Type)
}

func (e *TypeError) Unwrap() error { return ErrUnsupportedType }

// PanicError wraps a value recovered while converting input to text.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic during text conversion: %v", e.Value)
}

func typeError(v any) error {
	return &TypeError{Type: reflect.TypeOf(v)}
}
