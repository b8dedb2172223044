package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	emotes "github.com/reoring/emotes"
	"github.com/reoring/emotes/config"
	"github.com/reoring/emotes/transport"
)

type commandContext struct {
	configFlag *string
	verbose    *bool
	jsonOut    *bool

	configOnce sync.Once
	config     config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string, verbose, jsonOut *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
		jsonOut:    jsonOut,
	}
}

// ensureConfig loads the file named by --config, or the defaults when the
// flag is empty.
func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if path == "" {
			c.config = config.Default()
			return
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if c.verbose != nil && *c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (c *commandContext) getter(cmd *cobra.Command) transport.Getter {
	return transport.NewHTTP(c.config.HTTP, transport.WithLogger(c.logger(cmd)))
}

func (c *commandContext) parseOpt() emotes.ParseOpt {
	return c.config.Decode.ParseOpt()
}

func (c *commandContext) wantJSON() bool {
	return c.jsonOut != nil && *c.jsonOut
}

// readDocument returns the contents of a local document instead of fetching.
func readDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, emotes.IOFailure("read "+path, err)
	}
	return data, nil
}
