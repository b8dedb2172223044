package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verbose bool
	var jsonOut bool

	ctx := newCommandContext(&configFlag, &verbose, &jsonOut)

	rootCmd := &cobra.Command{
		Use:           "emotes",
		Short:         "Fetch and decode emote metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print decoded documents as JSON")

	rootCmd.AddCommand(newBTTVCommand(ctx))
	rootCmd.AddCommand(newTTVCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	return cmd.Annotations["skipConfigLoad"] == "true"
}
