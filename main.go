// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tfpatch/tfpatch/internal/command"
	"github.com/tfpatch/tfpatch/internal/config"
	"github.com/tfpatch/tfpatch/internal/log"
	"github.com/tfpatch/tfpatch/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	// Short-circuit completion: its positional is a shell name, not a file.
	if !helpFound && args[1] != "completion" {
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)
		args = deduplicateFlags(args)
		log.Debugf("args after dedup: args=%v", args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set
// arguments from the config file at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := ""
	removeIdx := -1
	if len(args) > idx {
		for i, a := range args[idx:] {
			if strings.HasPrefix(a, "@") {
				set = a[1:]
				removeIdx = idx + i
				break
			}
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}

// repeatableFlags are legitimately given more than once and are exempt
// from deduplication.
var repeatableFlags = map[string]bool{
	"--attr":  true,
	"-a":      true,
	"--group": true,
	"-g":      true,
}

// deduplicateFlags keeps only the last occurrence of each repeated flag so
// that user-supplied flags win over @set-injected defaults. Positional
// arguments and repeatable flags are preserved in place. A flag followed by
// a non-flag token is treated as a flag/value pair; anything else is
// treated as boolean.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type entry struct {
		tokens []string
		flag   string
	}

	var entries []entry
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			entries = append(entries, entry{tokens: []string{a}})
			continue
		}
		if eq := strings.Index(a, "="); eq != -1 {
			entries = append(entries, entry{tokens: []string{a}, flag: a[:eq]})
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			entries = append(entries, entry{tokens: []string{a, args[i+1]}, flag: a})
			i++
			continue
		}
		entries = append(entries, entry{tokens: []string{a}, flag: a})
	}

	last := map[string]int{}
	for idx, e := range entries {
		if e.flag != "" && !repeatableFlags[e.flag] {
			last[e.flag] = idx
		}
	}

	result := append([]string{}, args[:2]...)
	for idx, e := range entries {
		if e.flag != "" && !repeatableFlags[e.flag] && last[e.flag] != idx {
			continue
		}
		result = append(result, e.tokens...)
	}
	return result
}
