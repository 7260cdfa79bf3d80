// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package verify runs a post-patch HCL syntax check over the rendered file
// text. It is an outer guard only; the patching engine itself stays
// line-oriented and never parses HCL.
package verify
