package dsl

import (
	"context"
	"reflect"

	emotes "github.com/reoring/emotes"
)

// AnyAdapter adapts Schema[T] to an any-typed wrapper usable as an object field.
type AnyAdapter struct {
	parse         func(context.Context, any) (any, error)
	validateValue func(context.Context, any) error
}

// anyAdapterFromSchema wraps a strongly typed Schema[T] as AnyAdapter for Field builders.
func anyAdapterFromSchema[T any](s emotes.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		validateValue: func(ctx context.Context, v any) error {
			if v == nil {
				var zero T
				return s.ValidateValue(ctx, zero)
			}
			tv, ok := v.(T)
			if !ok {
				// named types such as ttv.Plans over map[string]*string
				rv, rt := reflect.ValueOf(v), reflect.TypeFor[T]()
				if !rv.Type().AssignableTo(rt) {
					return emotes.Issues{emotes.Issue{Path: "/", Code: emotes.CodeInvalidType, Message: "invalid field type"}}
				}
				tv = rv.Convert(rt).Interface().(T)
			}
			return s.ValidateValue(ctx, tv)
		},
	}
}

// Nullable wraps an AnyAdapter to accept JSON null. A null input parses to
// nil, which binds to the zero value of the target field.
func Nullable(ad AnyAdapter) AnyAdapter {
	prevParse := ad.parse
	prevValidate := ad.validateValue
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return prevParse(ctx, v)
	}
	out.validateValue = func(ctx context.Context, v any) error {
		if v == nil {
			return nil
		}
		return prevValidate(ctx, v)
	}
	return out
}

// Nullable enables fluent chaining: dsl.StringOf[T]().Nullable()
func (ad AnyAdapter) Nullable() AnyAdapter { return Nullable(ad) }
