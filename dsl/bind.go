package dsl

import (
	"context"
	"fmt"
	"reflect"

	emotes "github.com/reoring/emotes"
)

// Bind builds an object schema and binds it to struct type T. Every wire key
// registered on the builder must resolve to an exported field of T (see
// emotes.ResolveStructKey); the resulting key -> field table is the only
// renaming rule applied during Parse.
func Bind[T any](b *objectBuilder) (emotes.Schema[T], error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	os, ok := s.(*objectSchema)
	if !ok {
		return nil, fmt.Errorf("dsl: unexpected schema type %T for Bind", s)
	}
	return newTypedObjectSchema[T](os)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b *objectBuilder) emotes.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

// typedObjectSchema adapts an objectSchema to a typed struct T using key resolution.
type typedObjectSchema[T any] struct {
	inner      *objectSchema
	t          reflect.Type
	fieldByKey map[string]int // wire key -> struct field index
}

func newTypedObjectSchema[T any](os *objectSchema) (emotes.Schema[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dsl: Bind[%s] requires a struct type", rt)
	}
	idxByName := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := emotes.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	fm := make(map[string]int, len(os.fields))
	for _, k := range os.sortedKeys {
		i, ok := idxByName[k]
		if !ok {
			return nil, fmt.Errorf("dsl: Bind[%s]: no field for key %q", rt, k)
		}
		fm[k] = i
	}
	return &typedObjectSchema[T]{inner: os, t: rt, fieldByKey: fm}, nil
}

// Parse maps wire -> map via inner, then into struct fields by the key table.
func (s *typedObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	m, err := s.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	rv := reflect.New(s.t).Elem()
	var iss emotes.Issues
	for _, key := range s.inner.sortedKeys {
		val, ok := m[key]
		if !ok || val == nil {
			// absent or null: leave the zero value
			continue
		}
		fv := rv.Field(s.fieldByKey[key])
		vv := reflect.ValueOf(val)
		if !vv.Type().AssignableTo(fv.Type()) {
			iss = emotes.AppendIssues(iss, emotes.Issue{
				Path:    "/" + emotes.EscapePointer(key),
				Code:    emotes.CodeInvalidType,
				Message: "field type mismatch",
				Hint:    fmt.Sprintf("cannot assign %s to %s", vv.Type(), fv.Type()),
			})
			continue
		}
		fv.Set(vv)
	}
	if len(iss) > 0 {
		return zero, iss
	}
	return rv.Interface().(T), nil
}

func (s *typedObjectSchema[T]) ValidateValue(ctx context.Context, v T) error {
	rv := reflect.ValueOf(v)
	m := make(map[string]any, len(s.fieldByKey))
	for key, idx := range s.fieldByKey {
		m[key] = rv.Field(idx).Interface()
	}
	return s.inner.ValidateValue(ctx, m)
}
