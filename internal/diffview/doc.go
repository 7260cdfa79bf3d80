// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diffview renders a line-level diff between the original and
// patched renderings of a file, for --diff and dry-run previews.
package diffview
