// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package patch is the line-oriented reconciliation engine. It locates
// resource blocks by brace balance, classifies each target attribute's
// current state inside a block, and applies the minimal in-place edit that
// reaches the desired state: overwrite a drifted value (when enforcement is
// on), uncomment a commented assignment, or append a missing one before the
// closing brace. A post-pass pulls paired attributes onto adjacent lines.
//
// The engine is deliberately not an HCL parser. Blocks are delimited by
// counting '{' and '}' characters per line, which means braces inside
// string values or comments will corrupt depth tracking. That limitation is
// accepted; do not "fix" it with a grammar-aware parser.
package patch
