// Package bttv decodes and fetches the BetterTTV v2 emote API.
//
// The global endpoint lists emotes available on every channel; the channel
// endpoint lists the emotes enabled for one channel. Both responses carry a
// URL template and an ordered emote sequence.
package bttv

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	emotes "github.com/reoring/emotes"
	"github.com/reoring/emotes/config"
	"github.com/reoring/emotes/transport"
)

// DecodeGlobal decodes a global emotes response.
func DecodeGlobal(data []byte, opts ...emotes.ParseOpt) (Global, error) {
	return emotes.Decode("bttv.DecodeGlobal", globalSchema, data, opts...)
}

// DecodeChannel decodes a channel emotes response.
func DecodeChannel(data []byte, opts ...emotes.ParseOpt) (Channel, error) {
	return emotes.Decode("bttv.DecodeChannel", channelSchema, data, opts...)
}

// FetchGlobal downloads the global emotes document from the public endpoint.
func FetchGlobal(ctx context.Context, g transport.Getter) ([]byte, error) {
	return fetch(ctx, g, "bttv.FetchGlobal", config.DefaultBTTVGlobalURL)
}

// FetchChannel downloads the emotes document of channel name. The name is
// inserted into the URL as given.
func FetchChannel(ctx context.Context, g transport.Getter, name string) ([]byte, error) {
	return fetch(ctx, g, "bttv.FetchChannel", channelURL(config.DefaultBTTVChannelURL, name))
}

func channelURL(template, name string) string {
	return strings.ReplaceAll(template, config.ChannelNamePlaceholder, name)
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

// Client fetches and decodes BetterTTV documents using configured endpoints.
type Client struct {
	getter transport.Getter
	cfg    config.BTTV
	parse  emotes.ParseOpt
	logger *slog.Logger
}

// NewClient returns a client reading through g. Empty endpoints in cfg fall
// back to the public API.
func NewClient(g transport.Getter, cfg config.BTTV, opts ...Option) *Client {
	if cfg.GlobalURL == "" {
		cfg.GlobalURL = config.DefaultBTTVGlobalURL
	}
	if cfg.ChannelURL == "" {
		cfg.ChannelURL = config.DefaultBTTVChannelURL
	}
	c := &Client{
		getter: g,
		cfg:    cfg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Global fetches and decodes the global emotes.
func (c *Client) Global(ctx context.Context) (Global, error) {
	body, err := fetch(ctx, c.getter, "bttv.FetchGlobal", c.cfg.GlobalURL)
	if err != nil {
		c.logger.Warn("bttv global fetch failed", "error", err)
		return Global{}, err
	}
	out, err := DecodeGlobal(body, c.parse)
	if err != nil {
		c.logger.Warn("bttv global decode failed", "error", err)
		return Global{}, err
	}
	c.logger.Debug("bttv global decoded", "emotes", len(out.Emotes))
	return out, nil
}

// Channel fetches and decodes the emotes of channel name.
func (c *Client) Channel(ctx context.Context, name string) (Channel, error) {
	body, err := fetch(ctx, c.getter, "bttv.FetchChannel", channelURL(c.cfg.ChannelURL, name))
	if err != nil {
		c.logger.Warn("bttv channel fetch failed", "channel", name, "error", err)
		return Channel{}, err
	}
	out, err := DecodeChannel(body, c.parse)
	if err != nil {
		c.logger.Warn("bttv channel decode failed", "channel", name, "error", err)
		return Channel{}, err
	}
	c.logger.Debug("bttv channel decoded", "channel", name, "emotes", len(out.Emotes))
	return out, nil
}
