// Package ttv decodes and fetches the twitchemotes.com api_cache v3 documents.
//
// The API carries no image URL template. EmoteImageURL builds the Twitch CDN
// URL of an emote; many emotes were only made for ImageSmall.
package ttv

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	emotes "github.com/reoring/emotes"
	"github.com/reoring/emotes/config"
	"github.com/reoring/emotes/transport"
)

// ImageSize selects a Twitch CDN resolution.
type ImageSize string

const (
	ImageSmall  ImageSize = "1.0"
	ImageMedium ImageSize = "2.0"
	ImageLarge  ImageSize = "3.0"
)

// EmoteImageURL returns the CDN URL of emote id at size.
func EmoteImageURL(id int32, size ImageSize) string {
	return "https://static-cdn.jtvnw.net/emoticons/v1/" + strconv.FormatInt(int64(id), 10) + "/" + string(size)
}

// DecodeGlobal decodes the global emotes document, keyed by emote code.
func DecodeGlobal(data []byte, opts ...emotes.ParseOpt) (Global, error) {
	m, err := emotes.Decode("ttv.DecodeGlobal", globalSchema, data, opts...)
	if err != nil {
		return nil, err
	}
	return Global(m), nil
}

// DecodeSubscriber decodes the subscriber document, keyed by channel id.
func DecodeSubscriber(data []byte, opts ...emotes.ParseOpt) (Channels, error) {
	m, err := emotes.Decode("ttv.DecodeSubscriber", channelsSchema, data, opts...)
	if err != nil {
		return nil, err
	}
	return Channels(m), nil
}

// FetchGlobal downloads the global emotes document from the public endpoint.
func FetchGlobal(ctx context.Context, g transport.Getter) ([]byte, error) {
	return fetch(ctx, g, "ttv.FetchGlobal", config.DefaultTTVGlobalURL)
}

// FetchSubscriber downloads the subscriber document from the public endpoint.
// The document is large; callers should budget for it.
func FetchSubscriber(ctx context.Context, g transport.Getter) ([]byte, error) {
	return fetch(ctx, g, "ttv.FetchSubscriber", config.DefaultTTVSubscriberURL)
}

func fetch(ctx context.Context, g transport.Getter, op, url string) ([]byte, error) {
	if g == nil {
		return nil, emotes.TransportFailure(op, errors.New("nil getter"))
	}
	body, err := g.Get(ctx, url)
	if err != nil {
		return nil, emotes.Classify(emotes.KindTransport, op, err)
	}
	return body, nil
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParseOpt sets the decode limits applied to every response.
func WithParseOpt(o emotes.ParseOpt) Option {
	return func(c *Client) { c.parse = o }
}

// Client fetches and decodes twitchemotes.com documents.
type Client struct {
	getter transport.Getter
	cfg    config.TTV
	parse  emotes.ParseOpt
	logger *slog.Logger
}

// NewClient returns a client reading through g. Empty endpoints in cfg fall
// back to the public API.
func NewClient(g transport.Getter, cfg config.TTV, opts ...Option) *Client {
	if cfg.GlobalURL == "" {
		cfg.GlobalURL = config.DefaultTTVGlobalURL
	}
	if cfg.SubscriberURL == "" {
		cfg.SubscriberURL = config.DefaultTTVSubscriberURL
	}
	c := &Client{getter: g, cfg: cfg, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Global fetches and decodes the global emotes.
func (c *Client) Global(ctx context.Context) (Global, error) {
	body, err := fetch(ctx, c.getter, "ttv.FetchGlobal", c.cfg.GlobalURL)
	if err != nil {
		c.logger.Warn("ttv global fetch failed", "error", err)
		return nil, err
	}
	out, err := DecodeGlobal(body, c.parse)
	if err != nil {
		c.logger.Warn("ttv global decode failed", "error", err)
		return nil, err
	}
	c.logger.Debug("ttv global decoded", "emotes", len(out))
	return out, nil
}

// Subscriber fetches and decodes the subscriber channels.
func (c *Client) Subscriber(ctx context.Context) (Channels, error) {
	body, err := fetch(ctx, c.getter, "ttv.FetchSubscriber", c.cfg.SubscriberURL)
	if err != nil {
		c.logger.Warn("ttv subscriber fetch failed", "error", err)
		return nil, err
	}
	out, err := DecodeSubscriber(body, c.parse)
	if err != nil {
		c.logger.Warn("ttv subscriber decode failed", "error", err)
		return nil, err
	}
	c.logger.Debug("ttv subscriber decoded", "channels", len(out), "bytes", len(body))
	return out, nil
}
