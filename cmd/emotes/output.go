package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(cmd *cobra.Command, headers []string, rows [][]string, aligns []columnAlignment) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
