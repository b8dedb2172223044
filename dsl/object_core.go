package dsl

import (
	"context"

	emotes "github.com/reoring/emotes"
)

type objectSchema struct {
	fields     map[string]AnyAdapter
	required   map[string]struct{}
	sortedKeys []string
}

var _ emotes.Schema[map[string]any] = (*objectSchema)(nil)

// Parse decodes the known fields of a JSON object. Every known field is
// visited so that all mismatches are reported together; unknown keys are
// dropped.
func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("expected object")
	}
	out := make(map[string]any, len(o.fields))
	var iss emotes.Issues
	for _, k := range o.sortedKeys {
		ad := o.fields[k]
		val, exists := src[k]
		if !exists {
			if _, req := o.required[k]; req {
				iss = emotes.AppendIssues(iss, emotes.Issue{
					Path:    "/" + emotes.EscapePointer(k),
					Code:    emotes.CodeRequired,
					Message: "required property missing",
					Hint:    "missing key " + k,
				})
			}
			continue
		}
		parsed, err := ad.parse(ctx, val)
		if err != nil {
			iss = emotes.AppendIssues(iss, emotes.IssuesFromErr("/", err).Rebase("/"+emotes.EscapePointer(k))...)
			continue
		}
		out[k] = parsed
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	for _, k := range o.sortedKeys {
		ad := o.fields[k]
		if val, ok := v[k]; ok {
			if err := ad.validateValue(ctx, val); err != nil {
				return emotes.IssuesFromErr("/", err).Rebase("/" + emotes.EscapePointer(k))
			}
		} else if _, req := o.required[k]; req {
			return emotes.Issues{emotes.Issue{Path: "/" + emotes.EscapePointer(k), Code: emotes.CodeRequired, Message: "required property missing"}}
		}
	}
	return nil
}
