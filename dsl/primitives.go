package dsl

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	emotes "github.com/reoring/emotes"
)

// String returns the minimal string schema implementation.
func String() emotes.Schema[string] { return stringSchema{} }

type stringSchema struct{}

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidType("expected string")
	}
	return s, nil
}

func (stringSchema) ValidateValue(ctx context.Context, v string) error { return nil }

// stringAsSchema projects stringSchema to a domain type T with underlying string.
type stringAsSchema[T ~string] struct{}

func (stringAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	s, err := (stringSchema{}).Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return T(s), nil
}

func (stringAsSchema[T]) ValidateValue(ctx context.Context, v T) error { return nil }

// StringOf returns an AnyAdapter for a string wire value projected to T.
func StringOf[T ~string]() AnyAdapter {
	return anyAdapterFromSchema[T](stringAsSchema[T]{})
}

// Int32 returns a schema for JSON integers that fit in an int32.
func Int32() emotes.Schema[int32] { return int32AsSchema[int32]{} }

// int32AsSchema projects an integral json.Number to a domain type T with underlying int32.
// Fractions and exponents are rejected rather than truncated.
type int32AsSchema[T ~int32] struct{}

func (int32AsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	var text string
	switch t := v.(type) {
	case json.Number:
		text = t.String()
	case int:
		text = strconv.Itoa(t)
	case int32:
		return T(t), nil
	case int64:
		text = strconv.FormatInt(t, 10)
	default:
		return zero, invalidType("expected integer")
	}
	i64, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return zero, emotes.Issues{{Path: "/", Code: emotes.CodeOverflow, Message: "int32 overflow", Hint: text, Cause: err}}
		}
		return zero, emotes.Issues{{Path: "/", Code: emotes.CodeInvalidType, Message: "invalid type", Hint: "expected integer, got " + text, Cause: err}}
	}
	return T(int32(i64)), nil
}

func (int32AsSchema[T]) ValidateValue(ctx context.Context, v T) error { return nil }

// Int32Of returns an AnyAdapter for an integral wire value projected to T(~int32).
func Int32Of[T ~int32]() AnyAdapter {
	return anyAdapterFromSchema[T](int32AsSchema[T]{})
}

// Any accepts every JSON value, including null, and keeps it as decoded
// (objects as map[string]any, arrays as []any, numbers as json.Number).
func Any() emotes.Schema[any] { return anySchema{} }

type anySchema struct{}

func (anySchema) Parse(ctx context.Context, v any) (any, error)    { return v, nil }
func (anySchema) ValidateValue(ctx context.Context, v any) error { return nil }

// AnyOf adapts Any() for use as an unvalidated object field.
func AnyOf() AnyAdapter { return anyAdapterFromSchema[any](anySchema{}) }

func invalidType(hint string) emotes.Issues {
	return emotes.Issues{{Path: "/", Code: emotes.CodeInvalidType, Message: "invalid type", Hint: hint}}
}
