// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfpatch/tfpatch/internal/meta"
)

const bashCompletionScript = `# bash completion for tfpatch
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tfpatch()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "apply scan completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--attr -a --group -g --output -o --resource -r"

    case "$cmd" in
        apply)
            local opts="$common --backup -b --color -c --diff -d --dry-run -n --enforce -e --verify"
            ;;
        scan)
            local opts="$common"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise we're on a file positional - complete .tf files
    COMPREPLY=( $(compgen -o filenames -f -X '!*.tf' -- "$cur") )
    return 0
}

complete -F _tfpatch tfpatch
`

const zshCompletionScript = `#compdef tfpatch

_tfpatch() {
  local -a cmds
  cmds=(
    'apply:ensure target attributes inside matching resource blocks'
    'scan:report attribute state without modifying anything'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attr)'{-a,--attr}'[target attribute name=value]:attr'
  '(-g --group)'{-g,--group}'[adjacency pair first,second]:group'
  '(-o --output)'{-o,--output}'[report format]:format:(text json yaml)'
  '(-r --resource)'{-r,--resource}'[resource block type]:resource'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tfpatch commands' cmds
    return
  fi

  case $words[2] in
    apply)
      _arguments -C \
        $common \
        '(-b --backup)'{-b,--backup}'[create a .bak copy]' \
        '(-c --color)'{-c,--color}'[colored diff output]' \
        '(-d --diff)'{-d,--diff}'[show a line diff]' \
        '(-n --dry-run)'{-n,--dry-run}'[preview only]' \
        '(-e --enforce)'{-e,--enforce}'[overwrite drifted values]' \
        '--verify[parse the result as HCL]' \
        '*:file:_files -g "*.tf"'
      ;;
    scan)
      _arguments -C $common '*:file:_files -g "*.tf"'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:file:_files -g "*.tf"'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tfpatch tfpatch
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: tfpatch completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tfpatch completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: completionCommandAction,
	}
}
