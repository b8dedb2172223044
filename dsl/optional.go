package dsl

import (
	"context"

	emotes "github.com/reoring/emotes"
)

// Optional wraps elem so that JSON null decodes to a nil pointer and any other
// value decodes through elem. Combined with an optional object field, an
// absent key also leaves the pointer nil.
func Optional[T any](elem emotes.Schema[T]) emotes.Schema[*T] { return optionalSchema[T]{elem: elem} }

// OptionalOf adapts Optional(elem) for use as an object field.
func OptionalOf[T any](elem emotes.Schema[T]) AnyAdapter {
	return anyAdapterFromSchema[*T](Optional[T](elem))
}

type optionalSchema[T any] struct{ elem emotes.Schema[T] }

func (o optionalSchema[T]) Parse(ctx context.Context, v any) (*T, error) {
	if v == nil {
		return nil, nil
	}
	tv, err := o.elem.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return &tv, nil
}

func (o optionalSchema[T]) ValidateValue(ctx context.Context, v *T) error {
	if v == nil {
		return nil
	}
	return o.elem.ValidateValue(ctx, *v)
}
