package emotes

import (
	"errors"
	"fmt"
)

// Kind classifies a failure returned by any public operation.
type Kind int

const (
	// KindIO marks a local I/O failure, such as reading a response body.
	KindIO Kind = iota + 1
	// KindDecode marks malformed JSON or a document that does not match its schema.
	KindDecode
	// KindTransport marks an HTTP or network failure reported by the transport.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io failure"
	case KindDecode:
		return "decode failure"
	case KindTransport:
		return "transport failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel markers matched by errors.Is against any classified error.
var (
	ErrIO        = errors.New("io failure")
	ErrDecode    = errors.New("decode failure")
	ErrTransport = errors.New("transport failure")
)

// Error is the single error type returned by fetch and decode operations.
// Err keeps the original cause untouched for diagnostics.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel marker of e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrTransport:
		return e.Kind == KindTransport
	}
	return false
}

// IOFailure wraps err as a KindIO failure of op. A nil err yields nil.
func IOFailure(op string, err error) error { return newError(KindIO, op, err) }

// DecodeFailure wraps err as a KindDecode failure of op. A nil err yields nil.
func DecodeFailure(op string, err error) error { return newError(KindDecode, op, err) }

// TransportFailure wraps err as a KindTransport failure of op. A nil err yields nil.
func TransportFailure(op string, err error) error { return newError(KindTransport, op, err) }

func newError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Classify wraps err as kind unless it already carries a classification, in
// which case it is returned unchanged so failures propagate with their
// original kind and operation.
func Classify(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := KindOf(err); ok {
		return err
	}
	return newError(kind, op, err)
}

// KindOf returns the classification carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
