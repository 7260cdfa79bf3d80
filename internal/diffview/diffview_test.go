// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package diffview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Identical(t *testing.T) {
	text := "a\nb\n"
	assert.Empty(t, Render(text, text, false))
}

func TestRender_InsertedLine(t *testing.T) {
	before := "resource \"aws_vpn_connection\" \"main\" {\n}\n"
	after := "resource \"aws_vpn_connection\" \"main\" {\n  tunnel1_startup_action = \"start\"\n}\n"

	out := Render(before, after, false)

	assert.Contains(t, out, "+   tunnel1_startup_action = \"start\"")
	assert.NotContains(t, out, "- ")
}

func TestRender_ChangedLine(t *testing.T) {
	before := "  tunnel1_startup_action = \"stop\"\n"
	after := "  tunnel1_startup_action = \"start\"\n"

	out := Render(before, after, false)

	assert.Contains(t, out, "-   tunnel1_startup_action = \"stop\"")
	assert.Contains(t, out, "+   tunnel1_startup_action = \"start\"")
}

func TestRender_UnchangedLinesKeptForContext(t *testing.T) {
	before := "a\nb\nc\n"
	after := "a\nB\nc\n"

	out := Render(before, after, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Contains(t, lines, "  a")
	assert.Contains(t, lines, "  c")
	assert.Contains(t, lines, "- b")
	assert.Contains(t, lines, "+ B")
}
