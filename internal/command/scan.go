// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfpatch/tfpatch/internal/meta"
	"github.com/tfpatch/tfpatch/internal/patch"
	"github.com/tfpatch/tfpatch/internal/textfile"
	"github.com/tfpatch/tfpatch/internal/util"
)

// scanCommandAction is the action handler for the "scan" subcommand. It
// reports the state of every target attribute in every matching block
// without mutating anything.
func scanCommandAction(ctx context.Context, cmd *cli.Command) error {
	spec, err := BuildSpec(cmd)
	if err != nil {
		return err
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("at least one .tf file argument is required")
	}

	eng := patch.New(spec, false)
	format := cmd.String("output")
	for _, f := range files {
		path, err := util.ParseFileArg(f)
		if err != nil {
			return fmt.Errorf("failed to resolve file (%s): %w", f, err)
		}

		doc, err := textfile.Load(path)
		if err != nil {
			return err
		}

		findings := eng.Scan(doc.Lines)
		if len(findings) == 0 && format == "text" {
			fmt.Fprintf(os.Stdout, "No %q resource blocks found in %s.\n",
				spec.ResourceType, path)
			continue
		}
		if err := EmitFindings(os.Stdout, findings, format); err != nil {
			return err
		}
	}
	return nil
}

// scanCommandBuilder constructs the cli.Command for "scan".
func scanCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "report attribute state without modifying anything",
		UsageText: "tfpatch scan <file.tf> [<file.tf> ...] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  NewCommonFlags("scan"),
		Action: scanCommandAction,
	}
}
