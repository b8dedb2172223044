// Package dsl provides the schema combinators used to decode emote payloads.
//
// Overview
//   - Primitives: String()/StringOf[T](), Int32()/Int32Of[T](), Any()/AnyOf().
//   - Containers: Array(elem)/ArrayOf, Map(elem)/MapOf.
//   - Presence: Optional(elem)/OptionalOf maps absent or null to a nil pointer;
//     Nullable(adapter) accepts null as the zero value.
//   - Objects: ObjectOf[T]().Field(key, adapter).Required()...MustBind().
//   - Coercions: Codec(c)/CodecOf(c) run a wire->domain codec inside a field.
//
// Field keys are the literal wire keys. Bind resolves each key to the struct
// field carrying the same name in its `emotes:"name=..."` or `json` tag, so
// every rename (urlTemplate, imageType, "1.5", ...) is spelled out once on the
// record type. Unknown wire keys are ignored.
//
// Example
//
//	type Emote struct {
//	    ID        string `json:"id"`
//	    ImageType string `json:"imageType"`
//	}
//
//	emote := dsl.ObjectOf[Emote]().
//	    Field("id", dsl.StringOf[string]()).Required().
//	    Field("imageType", dsl.StringOf[string]()).Required().
//	    MustBind()
//	v, err := emotes.ParseFrom(ctx, emote, emotes.JSONBytes(data))
//
// Error model
//
// Parse returns emotes.Issues. Paths are JSON Pointers relative to the value
// being parsed; containers rebase child issues under their own key or index,
// so the final paths point into the original document.
package dsl
