// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfpatch/tfpatch/internal/diffview"
	"github.com/tfpatch/tfpatch/internal/log"
	"github.com/tfpatch/tfpatch/internal/meta"
	"github.com/tfpatch/tfpatch/internal/patch"
	"github.com/tfpatch/tfpatch/internal/textfile"
	"github.com/tfpatch/tfpatch/internal/util"
	"github.com/tfpatch/tfpatch/internal/verify"
)

// applyCommandAction is the action handler for the "apply" subcommand. It
// patches each file argument in place, or previews the changes under
// --dry-run.
func applyCommandAction(ctx context.Context, cmd *cli.Command) error {
	spec, err := BuildSpec(cmd)
	if err != nil {
		return err
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("at least one .tf file argument is required")
	}

	eng := patch.New(spec, cmd.Bool("enforce"))
	for _, f := range files {
		path, err := util.ParseFileArg(f)
		if err != nil {
			return fmt.Errorf("failed to resolve file (%s): %w", f, err)
		}
		if err := patchFile(cmd, eng, path); err != nil {
			return err
		}
	}
	return nil
}

// patchFile runs the engine over one file and handles reporting, preview,
// backup, write, and the optional post-write syntax check.
func patchFile(cmd *cli.Command, eng *patch.Engine, path string) error {
	doc, err := textfile.Load(path)
	if err != nil {
		return err
	}

	res := eng.Apply(doc.Lines)
	log.Debugf("file patched: path=%s changed=%v msgs=%d", path, res.Changed, len(res.Messages))

	if err := EmitMessages(os.Stdout, res.Messages, cmd.String("output")); err != nil {
		return err
	}

	if !res.Changed {
		fmt.Fprintln(os.Stdout, "No modifications were necessary.")
		return nil
	}

	if cmd.Bool("diff") || cmd.Bool("dry-run") {
		before := doc.Render(doc.Lines)
		after := doc.Render(res.Lines)
		if d := diffview.Render(before, after, cmd.Bool("color")); d != "" {
			fmt.Fprint(os.Stdout, d)
		}
	}

	if cmd.Bool("dry-run") {
		fmt.Fprintln(os.Stdout, "Dry-run: preview only; file not written.")
		return nil
	}

	if cmd.Bool("backup") {
		bak, err := doc.Backup()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Backup created: %s\n", bak)
	}

	if err := doc.Write(res.Lines); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "File updated.")

	if cmd.Bool("verify") {
		return verify.Check(path, []byte(doc.Render(res.Lines)))
	}
	return nil
}

// applyCommandBuilder constructs the cli.Command for "apply", wiring
// metadata, flags, and the action handler.
func applyCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "ensure target attributes inside matching resource blocks",
		UsageText: "tfpatch apply <file.tf> [<file.tf> ...] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append(NewCommonFlags("apply"),
			enforceFlag,
			dryRunFlag,
			backupFlag,
			diffFlag,
			verifyFlag,
			colorFlag,
		),
		Action: applyCommandAction,
	}
}
