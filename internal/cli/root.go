// Package cli implements the urlx command line tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// NewRootCommand builds the urlx command tree.
func NewRootCommand() *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:          "urlx",
		Short:        "Validate, inspect and percent-encode HTTP and WebSocket URLs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case formatText, formatJSON, formatYAML:
				return nil
			}
			return fmt.Errorf("unknown output format %q, want %s, %s or %s", output, formatText, formatJSON, formatYAML)
		},
	}

	root.PersistentFlags().StringVarP(&output, "output", "o", formatText, "Output format: text, json or yaml")

	root.AddCommand(
		newInspectCommand(&output),
		newEncodeCommand(&output),
		newDecodeCommand(&output),
	)

	return root
}
