// Package codec holds wire <-> domain transforms applied at decode time.
package codec

import (
	"context"

	emotes "github.com/reoring/emotes"
	"github.com/reoring/emotes/dsl"
)

// EmptyAsAbsent returns a Codec for optional strings that upstream APIs send
// as "" when unset. Decode maps "" to nil and every other string to a pointer
// to the identical value; Encode maps nil back to "".
func EmptyAsAbsent() emotes.Codec[string, *string] {
	return emptyAsAbsentCodec{in: dsl.String()}
}

type emptyAsAbsentCodec struct {
	in emotes.Schema[string]
}

func (c emptyAsAbsentCodec) In() emotes.Schema[string] { return c.in }

func (c emptyAsAbsentCodec) Decode(ctx context.Context, a string) (*string, error) {
	if a == "" {
		return nil, nil
	}
	return &a, nil
}

func (c emptyAsAbsentCodec) Encode(ctx context.Context, b *string) (string, error) {
	if b == nil {
		return "", nil
	}
	if _, err := c.in.Parse(ctx, *b); err != nil {
		return "", err
	}
	return *b, nil
}
