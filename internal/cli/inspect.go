package cli

import (
	"io"
	"strconv"
	"strings"

	domain "url-toolkit/internal/domain/url"
	"url-toolkit/internal/lib/urlview"

	"github.com/spf13/cobra"
)

func newInspectCommand(output *string) *cobra.Command {
	var (
		kind   string
		params []string
	)

	cmd := &cobra.Command{
		Use:   "inspect <url>",
		Short: "Validate a URL and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := domain.ParseKind(kind)
			if err != nil {
				return err
			}

			u, err := domain.New(k, args[0])
			if err != nil {
				return err
			}

			view, err := urlview.WithParams(u, params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), *output, view, func(w io.Writer) {
				printView(w, view, params)
			})
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "http", "URL kind: http or ws")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Query parameter to decode (repeatable)")

	return cmd
}

func printView(w io.Writer, v urlview.View, params []string) {
	label(w, "Value", v.Value)
	label(w, "Kind", v.Kind)
	label(w, "Scheme", v.Scheme)
	if v.UserInfo != "" {
		label(w, "User info", v.UserInfo)
	}
	label(w, "Host", v.Host)
	label(w, "ASCII host", v.ASCIIHost)
	if v.Port != nil {
		label(w, "Port", strconv.Itoa(*v.Port))
	}
	label(w, "Path", v.Path)
	if v.Query != nil {
		label(w, "Query", *v.Query)
	}
	if v.Fragment != nil {
		label(w, "Fragment", *v.Fragment)
	}
	label(w, "ASCII", v.ASCII)
	label(w, "encodeURI", v.EncodedURI)
	label(w, "encodeURIComponent", v.EncodedURIComponent)

	for _, name := range params {
		label(w, "Param "+name, strings.Join(v.Params[name], ", "))
	}
}
