// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfpatch/tfpatch/internal/config"
	"github.com/tfpatch/tfpatch/internal/patch"
)

var (
	enforceFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "enforce",
		Aliases:     []string{"e"},
		Usage:       "overwrite attributes present with a different value",
		HideDefault: true,
	}

	dryRunFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "dry-run",
		Aliases:     []string{"n"},
		Usage:       "preview the changes without writing",
		HideDefault: true,
	}

	backupFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "backup",
		Aliases:     []string{"b"},
		Usage:       "create a timestamped .bak copy before writing",
		HideDefault: true,
	}

	diffFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "diff",
		Aliases:     []string{"d"},
		Usage:       "show a line diff of the changes",
		HideDefault: true,
	}

	verifyFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "verify",
		Usage:       "parse the patched file as HCL after patching",
		HideDefault: true,
	}

	colorFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored diff output",
		Value:   false,
	}
)

// NewCommonFlags returns the flags shared by apply and scan, namespaced to
// the given command for config file lookups.
func NewCommonFlags(ns string) []cli.Flag {
	return []cli.Flag{
		NewResourceFlag(ns),
		&cli.StringSliceFlag{
			Name:    "attr",
			Aliases: []string{"a"},
			Usage:   "target attribute as name=value (repeatable, replaces the default set)",
		},
		&cli.StringSliceFlag{
			Name:    "group",
			Aliases: []string{"g"},
			Usage:   "adjacency pair as first,second (repeatable, replaces the default set)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "report format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}
}

// NewResourceFlag constructs the "resource" flag, sourced from the
// environment and from namespaced then global keys of the config file when
// one is present.
func NewResourceFlag(ns string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "resource",
		Aliases: []string{"r"},
		Usage:   "resource block type to patch",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TFPATCH_RESOURCE"),
		),
		Value: patch.DefaultResourceType,
	}

	if path := config.Config.Source; path != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(ns, path, flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
