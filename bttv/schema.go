package bttv

import (
	emotes "github.com/reoring/emotes"
	"github.com/reoring/emotes/dsl"
)

var (
	emoteSchema = dsl.ObjectOf[Emote]().
		Field("id", dsl.StringOf[string]()).Required().
		Field("code", dsl.StringOf[string]()).Required().
		Field("channel", dsl.OptionalOf(dsl.String())).
		Field("restrictions", dsl.AnyOf()).
		Field("imageType", dsl.StringOf[string]()).Required().
		MustBind()

	globalSchema = dsl.ObjectOf[Global]().
		Field("status", dsl.Int32Of[int32]()).Required().
		Field("urlTemplate", dsl.StringOf[string]()).Required().
		Field("emotes", dsl.ArrayOf(emoteSchema)).Required().
		MustBind()

	channelSchema = dsl.ObjectOf[Channel]().
		Field("status", dsl.Int32Of[int32]()).Required().
		Field("urlTemplate", dsl.StringOf[string]()).Required().
		Field("bots", dsl.ArrayOf(dsl.Any())).Required().
		Field("emotes", dsl.ArrayOf(emoteSchema)).Required().
		MustBind()
)

// EmoteSchema returns the schema of a single emote object.
func EmoteSchema() emotes.Schema[Emote] { return emoteSchema }

// GlobalSchema returns the schema of the global emotes response.
func GlobalSchema() emotes.Schema[Global] { return globalSchema }

// ChannelSchema returns the schema of the channel emotes response.
func ChannelSchema() emotes.Schema[Channel] { return channelSchema }
