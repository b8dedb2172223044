package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/emotes/bttv"
)

func newBTTVCommand(ctx *commandContext) *cobra.Command {
	bttvCmd := &cobra.Command{
		Use:   "bttv",
		Short: "BetterTTV emotes",
	}
	bttvCmd.AddCommand(newBTTVGlobalCommand(ctx))
	bttvCmd.AddCommand(newBTTVChannelCommand(ctx))
	return bttvCmd
}

func newBTTVGlobalCommand(ctx *commandContext) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "global",
		Short: "List the global BetterTTV emotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var global bttv.Global
			var err error
			if file != "" {
				var data []byte
				if data, err = readDocument(file); err != nil {
					return err
				}
				global, err = bttv.DecodeGlobal(data, ctx.parseOpt())
			} else {
				client := bttv.NewClient(ctx.getter(cmd), ctx.config.BTTV,
					bttv.WithLogger(ctx.logger(cmd)),
					bttv.WithParseOpt(ctx.parseOpt()),
				)
				global, err = client.Global(cmd.Context())
			}
			if err != nil {
				return err
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, global)
			}
			writeBTTVEmotes(cmd, global.URLTemplate, global.Emotes)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Decode a saved response instead of fetching")
	return cmd
}

func newBTTVChannelCommand(ctx *commandContext) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "channel NAME",
		Short: "List the BetterTTV emotes of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			var channel bttv.Channel
			var err error
			if file != "" {
				var data []byte
				if data, err = readDocument(file); err != nil {
					return err
				}
				channel, err = bttv.DecodeChannel(data, ctx.parseOpt())
			} else {
				client := bttv.NewClient(ctx.getter(cmd), ctx.config.BTTV,
					bttv.WithLogger(ctx.logger(cmd)),
					bttv.WithParseOpt(ctx.parseOpt()),
				)
				channel, err = client.Channel(cmd.Context(), name)
			}
			if err != nil {
				return err
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, channel)
			}
			writeBTTVEmotes(cmd, channel.URLTemplate, channel.Emotes)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Decode a saved response instead of fetching")
	return cmd
}

func writeBTTVEmotes(cmd *cobra.Command, urlTemplate string, list []bttv.Emote) {
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{e.Code, e.ID, e.ImageType, optional(e.Channel), imageURL(urlTemplate, e.ID)})
	}
	writeTable(cmd, []string{"Code", "ID", "Type", "Channel", "URL"}, rows, nil)
	fmt.Fprintf(cmd.OutOrStdout(), "%d emotes\n", len(list))
}

// imageURL fills a BetterTTV URL template with the 1x image of id.
func imageURL(template, id string) string {
	r := strings.NewReplacer("{{id}}", id, "{{image}}", "1x")
	return r.Replace(template)
}
