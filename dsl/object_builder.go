package dsl

import (
	"errors"
	"sort"

	emotes "github.com/reoring/emotes"
)

type objectBuilder struct {
	fields   map[string]AnyAdapter
	required map[string]struct{}
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder. Keys not registered with Field are
// ignored when parsing.
func Object() *objectBuilder {
	return &objectBuilder{
		fields:   map[string]AnyAdapter{},
		required: map[string]struct{}{},
	}
}

// Field registers a field under its literal wire key.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	b.fields[name] = ad
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep    { return f.b.Field(name, ad) }
func (f *fieldStep) Build() (emotes.Schema[map[string]any], error) { return f.b.Build() }
func (f *fieldStep) MustBuild() emotes.Schema[map[string]any]      { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// Build validates the builder and returns a Schema.
func (b *objectBuilder) Build() (emotes.Schema[map[string]any], error) {
	for k := range b.required {
		if _, ok := b.fields[k]; !ok {
			return nil, errors.New("dsl: required key " + k + " has no field")
		}
	}
	for k, ad := range b.fields {
		if ad.parse == nil {
			return nil, errors.New("dsl: field " + k + " has no schema")
		}
	}
	// cache sorted keys for deterministic order without per-parse sorting
	kfs := make([]string, 0, len(b.fields))
	for k := range b.fields {
		kfs = append(kfs, k)
	}
	sort.Strings(kfs)
	return &objectSchema{fields: b.fields, required: b.required, sortedKeys: kfs}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() emotes.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
