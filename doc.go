// Package emotes decodes emote metadata published by third-party chat emote
// services into typed, validated records.
//
// The root package holds the shared contract:
//
//   - Schema and Codec, the interfaces every decoder is built from
//   - Issues, the decode error model (JSON Pointer, code, message)
//   - Error and Kind, the single failure taxonomy (io, decode, transport)
//   - ParseFrom and Decode, which run a Schema over a JSON Source
//
// Service packages build on it: bttv for the BetterTTV v2 API and ttv for
// the twitchemotes.com api_cache v3 documents. Schemas are written with the
// dsl package; transport fetches raw bodies and config loads endpoints.
//
// Typical usage:
//
//	body, err := bttv.FetchChannel(ctx, transport.NewHTTP(cfg.HTTP), "forsen")
//	ch, err := bttv.DecodeChannel(body)
//	if errors.Is(err, emotes.ErrDecode) {
//		iss, _ := emotes.AsIssues(err)
//		// iss[0].Path == "/emotes/3/imageType"
//	}
package emotes
