// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tfpatch/tfpatch/internal/patch"
)

// EmitMessages writes the change log in the requested format.
func EmitMessages(w io.Writer, msgs []patch.Message, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(msgs)
	case "yaml":
		return yaml.NewEncoder(w).Encode(msgs)
	default:
		fmt.Fprintln(w, "Summary:")
		for _, m := range msgs {
			fmt.Fprintln(w, " - "+m.String())
		}
		return nil
	}
}

// EmitFindings writes a scan report in the requested format.
func EmitFindings(w io.Writer, findings []patch.Finding, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(findings)
	case "yaml":
		return yaml.NewEncoder(w).Encode(findings)
	default:
		for _, f := range findings {
			tag := fmt.Sprintf("[%d-%d]", f.Block.Start+1, f.Block.End+1)
			if f.Line > 0 {
				fmt.Fprintf(w, "%s %-9s %s (line %d)\n", tag, f.State, f.Attr, f.Line)
			} else {
				fmt.Fprintf(w, "%s %-9s %s\n", tag, f.State, f.Attr)
			}
		}
		return nil
	}
}
