package dsl

import (
	"context"

	emotes "github.com/reoring/emotes"
)

// Codec adapts a Codec[A,B] into a Schema[B] that accepts wire A and produces domain B.
// Parse: In.Parse -> Decode.
// ValidateValue (domain value): Encode, then In.ValidateValue on the wire form.
func Codec[A, B any](c emotes.Codec[A, B]) emotes.Schema[B] { return codecSchema[A, B]{c: c} }

// CodecOf adapts Codec(c) for use as an object field.
func CodecOf[A, B any](c emotes.Codec[A, B]) AnyAdapter {
	return anyAdapterFromSchema[B](Codec[A, B](c))
}

type codecSchema[A, B any] struct{ c emotes.Codec[A, B] }

func (s codecSchema[A, B]) Parse(ctx context.Context, v any) (B, error) {
	var zero B
	// wire -> A
	a, err := s.c.In().Parse(ctx, v)
	if err != nil {
		return zero, emotes.IssuesFromErr("/", err)
	}
	// A -> B
	b, err := s.c.Decode(ctx, a)
	if err != nil {
		return zero, emotes.IssuesFromErr("/", err)
	}
	return b, nil
}

func (s codecSchema[A, B]) ValidateValue(ctx context.Context, v B) error {
	a, err := s.c.Encode(ctx, v)
	if err != nil {
		return emotes.IssuesFromErr("/", err)
	}
	return s.c.In().ValidateValue(ctx, a)
}
