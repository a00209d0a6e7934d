package cli

import (
	"fmt"
	"io"

	domain "url-toolkit/internal/domain/url"

	"github.com/spf13/cobra"
)

type codecResult struct {
	Operation string `json:"operation" yaml:"operation"`
	Input     string `json:"input" yaml:"input"`
	Output    string `json:"output" yaml:"output"`
}

func newEncodeCommand(output *string) *cobra.Command {
	var component bool

	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Percent-encode text like encodeURI or encodeURIComponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := codecResult{Operation: "encode-uri", Input: args[0]}
			if component {
				res.Operation = "encode-uri-component"
				res.Output = domain.EncodeURIComponent(args[0])
			} else {
				res.Output = domain.EncodeURI(args[0])
			}

			return printCodec(cmd.OutOrStdout(), *output, res)
		},
	}

	cmd.Flags().BoolVarP(&component, "component", "c", false, "Also escape the reserved characters ;/?:@&=+$,#[]")

	return cmd
}

func newDecodeCommand(output *string) *cobra.Command {
	var component, strict bool

	cmd := &cobra.Command{
		Use:   "decode <text>",
		Short: "Decode percent-escapes like decodeURI or decodeURIComponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strict && !component {
				return fmt.Errorf("--strict requires --component")
			}

			res := codecResult{Operation: "decode-uri", Input: args[0]}
			switch {
			case strict:
				res.Operation = "decode-uri-component"
				out, err := domain.DecodeURIComponentStrict(args[0])
				if err != nil {
					return err
				}
				res.Output = out
			case component:
				res.Operation = "decode-uri-component"
				res.Output = domain.DecodeURIComponent(args[0])
			default:
				res.Output = domain.DecodeURI(args[0])
			}

			return printCodec(cmd.OutOrStdout(), *output, res)
		},
	}

	cmd.Flags().BoolVarP(&component, "component", "c", false, "Also decode escapes of reserved characters")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed escapes or invalid UTF-8")

	return cmd
}

func printCodec(w io.Writer, format string, res codecResult) error {
	return render(w, format, res, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, res.Output)
	})
}
