package ttv

// Emote is a twitchemotes.com emote.
type Emote struct {
	ID          int32   `json:"id"`
	Code        string  `json:"code"`
	EmoticonSet int32   `json:"emoticon_set"`
	Description *string `json:"description"`
}

// Global maps emote codes to emotes.
type Global map[string]Emote

// Badge describes a subscriber or bits badge.
type Badge struct {
	ImageURL1x  string `json:"image_url_1x"`
	ImageURL2x  string `json:"image_url_2x"`
	ImageURL4x  string `json:"image_url_4x"`
	Description string `json:"description"`
	Title       string `json:"title"`
	ClickAction string `json:"click_action"`
	// ClickURL is nil when the upstream value is empty, null or absent.
	ClickURL *string `json:"click_url"`
}

// Cheermote holds the image URL of every cheer tier.
type Cheermote struct {
	URL1   string `json:"1"`
	URL1_5 string `json:"1.5"`
	URL2   string `json:"2"`
	URL3   string `json:"3"`
	URL4   string `json:"4"`
}

// Plans maps a plan price to its optional product id.
type Plans map[string]*string

// Channel is everything the subscriber document lists for one channel.
type Channel struct {
	ChannelName      string               `json:"channel_name"`
	DisplayName      string               `json:"display_name"`
	ChannelID        string               `json:"channel_id"`
	BroadcasterType  *string              `json:"broadcaster_type"`
	Plans            Plans                `json:"plans"`
	Emotes           []Emote              `json:"emotes"`
	SubscriberBadges map[string]Badge     `json:"subscriber_badges"`
	BitsBadges       map[string]Badge     `json:"bits_badges"`
	Cheermotes       map[string]Cheermote `json:"cheermotes"`
	BaseSetID        string               `json:"base_set_id"`
}

// Channels maps channel ids to channels.
type Channels map[string]Channel
