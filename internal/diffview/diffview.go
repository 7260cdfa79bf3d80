// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diffview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tfpatch/tfpatch/internal/log"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Render produces a unified-style line diff of before and after. Inserted
// lines are prefixed "+", deleted lines "-", unchanged lines two spaces.
// When color is true, insertions are green and deletions red. Returns the
// empty string when the texts are identical.
func Render(before, after string, color bool) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()

	// Line-mode diff: map each line to a rune, diff the runes, map back.
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)
	log.Debugf("diff computed: segments=%d", len(diffs))

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		style := lipgloss.NewStyle()
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
			style = addedStyle
		case diffmatchpatch.DiffDelete:
			prefix = "- "
			style = removedStyle
		}

		for _, line := range splitSegment(d.Text) {
			rendered := prefix + line
			if color && d.Type != diffmatchpatch.DiffEqual {
				rendered = style.Render(rendered)
			}
			sb.WriteString(rendered)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// splitSegment breaks one diff segment into lines, dropping the empty tail
// produced by a trailing newline.
func splitSegment(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
