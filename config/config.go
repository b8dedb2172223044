// Package config loads endpoint, HTTP and decode settings for the emote
// clients from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	emotes "github.com/reoring/emotes"
)

// Upstream endpoints.
const (
	DefaultBTTVGlobalURL    = "https://api.betterttv.net/2/emotes"
	DefaultBTTVChannelURL   = "https://api.betterttv.net/2/channels/{name}"
	DefaultTTVGlobalURL     = "https://twitchemotes.com/api_cache/v3/global.json"
	DefaultTTVSubscriberURL = "https://twitchemotes.com/api_cache/v3/subscriber.json"
	DefaultUserAgent        = "emotes/dev"
	DefaultTimeout          = 30 * time.Second
	ChannelNamePlaceholder  = "{name}"
)

// Config is the root configuration document.
type Config struct {
	BTTV   BTTV   `yaml:"bttv"`
	TTV    TTV    `yaml:"ttv"`
	HTTP   HTTP   `yaml:"http"`
	Decode Decode `yaml:"decode"`
}

// BTTV holds the BetterTTV endpoints. ChannelURL must contain {name}.
type BTTV struct {
	GlobalURL  string `yaml:"global_url"`
	ChannelURL string `yaml:"channel_url"`
}

// TTV holds the twitchemotes.com endpoints.
type TTV struct {
	GlobalURL     string `yaml:"global_url"`
	SubscriberURL string `yaml:"subscriber_url"`
}

// HTTP configures the default transport.
type HTTP struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// Decode bounds document parsing.
type Decode struct {
	MaxDepth int `yaml:"max_depth"`
}

// ParseOpt converts the decode settings into parse options.
func (d Decode) ParseOpt() emotes.ParseOpt {
	return emotes.ParseOpt{MaxDepth: d.MaxDepth}
}

// Default returns a configuration pointing at the public endpoints.
func Default() Config {
	return Config{
		BTTV: BTTV{
			GlobalURL:  DefaultBTTVGlobalURL,
			ChannelURL: DefaultBTTVChannelURL,
		},
		TTV: TTV{
			GlobalURL:     DefaultTTVGlobalURL,
			SubscriberURL: DefaultTTVSubscriberURL,
		},
		HTTP: HTTP{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Decode: Decode{MaxDepth: emotes.DefaultMaxDepth},
	}
}

// Parse decodes YAML on top of Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBTTV(); err != nil {
		return err
	}
	if err := c.validateTTV(); err != nil {
		return err
	}
	if c.HTTP.Timeout <= 0 {
		return errors.New("http.timeout must be positive")
	}
	if c.Decode.MaxDepth < 0 {
		return errors.New("decode.max_depth must not be negative")
	}
	return nil
}

func (c *Config) validateBTTV() error {
	if strings.TrimSpace(c.BTTV.GlobalURL) == "" {
		return errors.New("bttv.global_url must be set")
	}
	if !strings.Contains(c.BTTV.ChannelURL, ChannelNamePlaceholder) {
		return fmt.Errorf("bttv.channel_url must contain %s", ChannelNamePlaceholder)
	}
	return nil
}

func (c *Config) validateTTV() error {
	if strings.TrimSpace(c.TTV.GlobalURL) == "" {
		return errors.New("ttv.global_url must be set")
	}
	if strings.TrimSpace(c.TTV.SubscriberURL) == "" {
		return errors.New("ttv.subscriber_url must be set")
	}
	return nil
}
