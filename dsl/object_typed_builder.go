package dsl

import emotes "github.com/reoring/emotes"

// ObjectOf returns a typed object builder that supports fluent Bind()/MustBind().
// The builder type carries T so chaining works without method type parameters.
func ObjectOf[T any]() *objectBuilderT[T] { return &objectBuilderT[T]{inner: Object()} }

type objectBuilderT[T any] struct{ inner *objectBuilder }

// fieldStepT is a typed variant of fieldStep that enables
// chain-friendly APIs like Field(...).Required().
type fieldStepT[T any] struct {
	tb   *objectBuilderT[T]
	name string
}

// Field registers a field and returns a typed field step for chaining.
func (tb *objectBuilderT[T]) Field(name string, ad AnyAdapter) *fieldStepT[T] {
	tb.inner.Field(name, ad)
	return &fieldStepT[T]{tb: tb, name: name}
}

func (tb *objectBuilderT[T]) Require(names ...string) *objectBuilderT[T] {
	tb.inner.Require(names...)
	return tb
}

// Bind builds and binds to T.
func (tb *objectBuilderT[T]) Bind() (emotes.Schema[T], error) { return Bind[T](tb.inner) }

// MustBind builds and binds to T, panicking on error.
func (tb *objectBuilderT[T]) MustBind() emotes.Schema[T] { return MustBind[T](tb.inner) }

// Required marks the current field as required and returns the typed builder.
func (f *fieldStepT[T]) Required() *objectBuilderT[T] {
	f.tb.inner.Require(f.name)
	return f.tb
}

// Optional marks the current field as optional and returns the typed builder.
func (f *fieldStepT[T]) Optional() *objectBuilderT[T] {
	delete(f.tb.inner.required, f.name)
	return f.tb
}

func (f *fieldStepT[T]) Field(name string, ad AnyAdapter) *fieldStepT[T] { return f.tb.Field(name, ad) }
func (f *fieldStepT[T]) Bind() (emotes.Schema[T], error)                 { return f.tb.Bind() }
func (f *fieldStepT[T]) MustBind() emotes.Schema[T]                      { return f.tb.MustBind() }
