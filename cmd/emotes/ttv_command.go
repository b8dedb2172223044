package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reoring/emotes/ttv"
)

func newTTVCommand(ctx *commandContext) *cobra.Command {
	ttvCmd := &cobra.Command{
		Use:   "ttv",
		Short: "twitchemotes.com emotes",
	}
	ttvCmd.AddCommand(newTTVGlobalCommand(ctx))
	ttvCmd.AddCommand(newTTVSubscriberCommand(ctx))
	ttvCmd.AddCommand(newTTVImageCommand())
	return ttvCmd
}

func newTTVGlobalCommand(ctx *commandContext) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "global",
		Short: "List the global Twitch emotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var global ttv.Global
			var err error
			if file != "" {
				var data []byte
				if data, err = readDocument(file); err != nil {
					return err
				}
				global, err = ttv.DecodeGlobal(data, ctx.parseOpt())
			} else {
				global, err = newTTVClient(ctx, cmd).Global(cmd.Context())
			}
			if err != nil {
				return err
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, global)
			}
			codes := make([]string, 0, len(global))
			for code := range global {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			rows := make([][]string, 0, len(codes))
			for _, code := range codes {
				e := global[code]
				rows = append(rows, []string{
					code,
					strconv.FormatInt(int64(e.ID), 10),
					strconv.FormatInt(int64(e.EmoticonSet), 10),
					ttv.EmoteImageURL(e.ID, ttv.ImageSmall),
				})
			}
			writeTable(cmd, []string{"Code", "ID", "Set", "URL"}, rows, []columnAlignment{alignLeft, alignRight, alignRight, alignLeft})
			fmt.Fprintf(cmd.OutOrStdout(), "%d emotes\n", len(global))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Decode a saved response instead of fetching")
	return cmd
}

func newTTVSubscriberCommand(ctx *commandContext) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "subscriber",
		Short: "Summarize the subscriber channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var channels ttv.Channels
			var err error
			if file != "" {
				var data []byte
				if data, err = readDocument(file); err != nil {
					return err
				}
				channels, err = ttv.DecodeSubscriber(data, ctx.parseOpt())
			} else {
				channels, err = newTTVClient(ctx, cmd).Subscriber(cmd.Context())
			}
			if err != nil {
				return err
			}
			if ctx.wantJSON() {
				return writeJSON(cmd, channels)
			}
			ids := make([]string, 0, len(channels))
			for id := range channels {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				ch := channels[id]
				rows = append(rows, []string{
					id,
					ch.DisplayName,
					optional(ch.BroadcasterType),
					strconv.Itoa(len(ch.Emotes)),
					strconv.Itoa(len(ch.SubscriberBadges) + len(ch.BitsBadges)),
					strconv.Itoa(len(ch.Cheermotes)),
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight}
			writeTable(cmd, []string{"Channel ID", "Name", "Type", "Emotes", "Badges", "Cheermotes"}, rows, aligns)
			fmt.Fprintf(cmd.OutOrStdout(), "%d channels\n", len(channels))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Decode a saved response instead of fetching")
	return cmd
}

func newTTVImageCommand() *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:         "image ID",
		Short:       "Print the CDN URL of a Twitch emote",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid emote id %q: %w", args[0], err)
			}
			s := ttv.ImageSize(size)
			switch s {
			case ttv.ImageSmall, ttv.ImageMedium, ttv.ImageLarge:
			default:
				return fmt.Errorf("invalid size %q (want 1.0, 2.0 or 3.0)", size)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ttv.EmoteImageURL(int32(id), s))
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", string(ttv.ImageSmall), "Image size: 1.0, 2.0 or 3.0")
	return cmd
}

func newTTVClient(ctx *commandContext, cmd *cobra.Command) *ttv.Client {
	return ttv.NewClient(ctx.getter(cmd), ctx.config.TTV,
		ttv.WithLogger(ctx.logger(cmd)),
		ttv.WithParseOpt(ctx.parseOpt()),
	)
}
