package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var labelColor = color.New(color.FgCyan, color.Bold)

func render(w io.Writer, format string, v any, text func(w io.Writer)) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

func label(w io.Writer, name, value string) {
	_, _ = labelColor.Fprintf(w, "%-22s", name+":")
	_, _ = fmt.Fprintln(w, value)
}
