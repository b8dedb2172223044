package emotes

import "context"

// Schema turns an untyped JSON value (as built from a Source) into T.
type Schema[T any] interface {
	// Parse converts v into T or returns Issues describing every mismatch.
	Parse(ctx context.Context, v any) (T, error)
	// ValidateValue verifies a value already typed as T without any conversion.
	ValidateValue(ctx context.Context, v T) error
}

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	In() Schema[A]                              // Wire schema (input side).
	Decode(ctx context.Context, a A) (B, error) // A (In) -> B.
	Encode(ctx context.Context, b B) (A, error) // B -> A, revalidated by In.
}
