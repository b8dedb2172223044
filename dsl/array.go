package dsl

import (
	"context"
	"strconv"

	emotes "github.com/reoring/emotes"
)

// Array returns a schema for JSON arrays whose elements all match elem.
// Element order is preserved and duplicates are kept.
func Array[E any](elem emotes.Schema[E]) emotes.Schema[[]E] { return &ArraySchema[E]{elem: elem} }

// ArraySchema decodes a JSON array into []E.
type ArraySchema[E any] struct {
	elem emotes.Schema[E]
}

// ArrayOf adapts Array[E] to AnyAdapter for use in typed object builders.
// Example: Field("emotes", dsl.ArrayOf(emoteSchema)).Required()
func ArrayOf[E any](elem emotes.Schema[E]) AnyAdapter {
	return anyAdapterFromSchema[[]E](Array[E](elem))
}

func (a *ArraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	switch src := v.(type) {
	case []E:
		if err := a.ValidateValue(ctx, src); err != nil {
			return nil, err
		}
		return src, nil
	case []any:
		res := make([]E, 0, len(src))
		var iss emotes.Issues
		for i := range src {
			ev, err := a.elem.Parse(ctx, src[i])
			if err != nil {
				iss = emotes.AppendIssues(iss, emotes.IssuesFromErr("/", err).Rebase("/"+strconv.Itoa(i))...)
				continue
			}
			res = append(res, ev)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return res, nil
	default:
		return nil, invalidType("expected array")
	}
}

func (a *ArraySchema[E]) ValidateValue(ctx context.Context, v []E) error {
	for i := range v {
		if err := a.elem.ValidateValue(ctx, v[i]); err != nil {
			return emotes.IssuesFromErr("/", err).Rebase("/" + strconv.Itoa(i))
		}
	}
	return nil
}
