package ttv

import (
	emotes "github.com/reoring/emotes"
	"github.com/reoring/emotes/codec"
	"github.com/reoring/emotes/dsl"
)

var (
	emoteSchema = dsl.ObjectOf[Emote]().
		Field("id", dsl.Int32Of[int32]()).Required().
		Field("code", dsl.StringOf[string]()).Required().
		Field("emoticon_set", dsl.Int32Of[int32]()).Required().
		Field("description", dsl.OptionalOf(dsl.String())).
		MustBind()

	badgeSchema = dsl.ObjectOf[Badge]().
		Field("image_url_1x", dsl.StringOf[string]()).Required().
		Field("image_url_2x", dsl.StringOf[string]()).Required().
		Field("image_url_4x", dsl.StringOf[string]()).Required().
		Field("description", dsl.StringOf[string]()).Required().
		Field("title", dsl.StringOf[string]()).Required().
		Field("click_action", dsl.StringOf[string]()).Required().
		Field("click_url", dsl.CodecOf(codec.EmptyAsAbsent()).Nullable()).
		MustBind()

	cheermoteSchema = dsl.ObjectOf[Cheermote]().
		Field("1", dsl.StringOf[string]()).Required().
		Field("1.5", dsl.StringOf[string]()).Required().
		Field("2", dsl.StringOf[string]()).Required().
		Field("3", dsl.StringOf[string]()).Required().
		Field("4", dsl.StringOf[string]()).Required().
		MustBind()

	channelSchema = dsl.ObjectOf[Channel]().
		Field("channel_name", dsl.StringOf[string]()).Required().
		Field("display_name", dsl.StringOf[string]()).Required().
		Field("channel_id", dsl.StringOf[string]()).Required().
		Field("broadcaster_type", dsl.OptionalOf(dsl.String())).
		Field("plans", dsl.MapOf(dsl.Optional(dsl.String()))).Required().
		Field("emotes", dsl.ArrayOf(emoteSchema)).Required().
		Field("subscriber_badges", dsl.MapOf(badgeSchema).Nullable()).
		Field("bits_badges", dsl.MapOf(badgeSchema).Nullable()).
		Field("cheermotes", dsl.MapOf(cheermoteSchema).Nullable()).
		Field("base_set_id", dsl.StringOf[string]()).Required().
		MustBind()

	globalSchema   = dsl.Map(emoteSchema)
	channelsSchema = dsl.Map(channelSchema)
)

// EmoteSchema returns the schema of a single emote object.
func EmoteSchema() emotes.Schema[Emote] { return emoteSchema }

// BadgeSchema returns the schema of a subscriber or bits badge.
func BadgeSchema() emotes.Schema[Badge] { return badgeSchema }

// CheermoteSchema returns the schema of a cheermote tier table.
func CheermoteSchema() emotes.Schema[Cheermote] { return cheermoteSchema }

// ChannelSchema returns the schema of one subscriber channel entry.
func ChannelSchema() emotes.Schema[Channel] { return channelSchema }
