package dsl

import (
	"context"
	"sort"

	emotes "github.com/reoring/emotes"
)

// Map returns a schema for JSON objects where every property value is
// validated by elem. It decodes into map[string]V; when a document repeats a
// key the last occurrence wins.
func Map[V any](elem emotes.Schema[V]) emotes.Schema[map[string]V] { return mapSchema[V]{val: elem} }

// MapOf adapts Map[V] to AnyAdapter for use in typed object builders.
func MapOf[V any](elem emotes.Schema[V]) AnyAdapter {
	return anyAdapterFromSchema[map[string]V](Map[V](elem))
}

type mapSchema[V any] struct{ val emotes.Schema[V] }

func (m mapSchema[V]) Parse(ctx context.Context, v any) (map[string]V, error) {
	switch src := v.(type) {
	case map[string]V:
		if err := m.ValidateValue(ctx, src); err != nil {
			return nil, err
		}
		return src, nil
	case map[string]any:
		out := make(map[string]V, len(src))
		var iss emotes.Issues
		// key-sorted so issue order is deterministic
		for _, k := range sortedKeys(src) {
			vv, err := m.val.Parse(ctx, src[k])
			if err != nil {
				iss = emotes.AppendIssues(iss, emotes.IssuesFromErr("/", err).Rebase("/"+emotes.EscapePointer(k))...)
				continue
			}
			out[k] = vv
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	default:
		return nil, invalidType("expected object")
	}
}

func (m mapSchema[V]) ValidateValue(ctx context.Context, v map[string]V) error {
	for _, k := range sortedKeys(v) {
		if err := m.val.ValidateValue(ctx, v[k]); err != nil {
			return emotes.IssuesFromErr("/", err).Rebase("/" + emotes.EscapePointer(k))
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
