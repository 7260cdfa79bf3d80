// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package patch

import (
	"fmt"

	"github.com/tfpatch/tfpatch/internal/log"
)

// normalizeBlock runs the adjacency pass over one fully reconciled block.
// It must run after reconciliation so freshly appended lines are subject to
// the group constraints too. Returns the net line-count delta.
func (r *run) normalizeBlock(b *Block) int {
	delta := 0
	for _, g := range r.spec.Groups {
		delta += r.normalizeGroup(b, g)
	}
	return delta
}

// normalizeGroup pulls the group's two assignment lines together. Blank
// lines strictly between them are deleted; if only comment lines remain
// between them afterwards, the second line is relocated to follow the
// first. Meaningful content between them is never reordered across. Missing
// or out-of-order members make the group a silent no-op.
func (r *run) normalizeGroup(b *Block, g AdjacencyGroup) int {
	firstIdx := r.findAssignment(*b, g.First)
	secondIdx := r.findAssignment(*b, g.Second)
	if firstIdx < 0 || secondIdx < 0 || secondIdx <= firstIdx {
		log.Tracef("group skipped: first=%s second=%s firstIdx=%d secondIdx=%d",
			g.First, g.Second, firstIdx, secondIdx)
		return 0
	}

	delta := 0
	removed := 0
	for idx := firstIdx + 1; idx < secondIdx; {
		if isBlank(r.lines[idx]) {
			r.deleteLine(idx)
			secondIdx--
			b.End--
			delta--
			removed++
			continue
		}
		idx++
	}
	if removed > 0 {
		r.note(*b, g.Second, KindTidy, fmt.Sprintf(
			"removed %d blank line(s) between %s and %s", removed, g.First, g.Second))
	}

	if secondIdx == firstIdx+1 {
		return delta
	}

	for idx := firstIdx + 1; idx < secondIdx; idx++ {
		if !isCommentOrBlank(r.lines[idx]) {
			log.Tracef("group left apart: content at line %d", idx+1)
			return delta
		}
	}

	// Pure move: delete then reinsert, so the net length is unchanged.
	// secondIdx > firstIdx+1 here, so the deletion cannot disturb the
	// insertion point.
	line := r.lines[secondIdx]
	r.deleteLine(secondIdx)
	r.insertLine(firstIdx+1, line)
	r.note(*b, g.Second, KindMove,
		fmt.Sprintf("moved %s to follow %s", g.Second, g.First))

	return delta
}

// findAssignment returns the index of the first uncommented assignment of
// the named attribute inside the block, any value, or -1. The adjacency
// pass runs after reconciliation, so matching the desired value would be
// redundant.
func (r *run) findAssignment(b Block, name string) int {
	m, ok := r.matcherFor(name)
	if !ok {
		return -1
	}
	for idx := b.Start + 1; idx < b.End && idx < len(r.lines); idx++ {
		if m.anyValueLine(r.lines[idx]) {
			return idx
		}
	}
	return -1
}
