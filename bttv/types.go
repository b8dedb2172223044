package bttv

// Emote is a single BetterTTV emote.
type Emote struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	// Channel is the uploader's channel, nil for global emotes.
	Channel *string `json:"channel"`
	// Restrictions is kept as decoded; it has never been observed populated.
	Restrictions any    `json:"restrictions"`
	ImageType    string `json:"imageType"`
}

// Global is the response of the global emotes endpoint.
type Global struct {
	Status int32 `json:"status"`
	// URLTemplate looks like //cdn.betterttv.net/emote/{{id}}/{{image}}.
	URLTemplate string  `json:"urlTemplate"`
	Emotes      []Emote `json:"emotes"`
}

// Channel is the response of the per-channel emotes endpoint.
type Channel struct {
	Status      int32   `json:"status"`
	URLTemplate string  `json:"urlTemplate"`
	Bots        []any   `json:"bots"`
	Emotes      []Emote `json:"emotes"`
}
