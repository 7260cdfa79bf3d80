// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package patch

import (
	"fmt"
	"strings"

	"github.com/tfpatch/tfpatch/internal/log"
)

// reconcileBlock ensures every spec attribute inside one block, in spec
// order. The buffer is mutated in place; b.End advances with each inserted
// line. Returns the net line-count delta so later block ranges can be
// shifted. The header line is never touched.
func (r *run) reconcileBlock(b *Block) int {
	indent := r.innerIndent(*b)
	findings := blockFindings(r.lines, *b, r.matchers)

	delta := 0
	for ai, attr := range r.spec.Attributes {
		target := attr.Name + " = " + attr.Value

		switch state, idx := findings[ai].resolve(); state {
		case StateExact:
			r.note(*b, attr.Name, KindNoop,
				fmt.Sprintf("no change: %q already present (uncommented)", target))

		case StateOtherValue:
			if !r.enforce {
				r.note(*b, attr.Name, KindSkip, fmt.Sprintf(
					"skipped: %s present with a different value at line %d (use --enforce to set %s)",
					attr.Name, idx+1, attr.Value))
				continue
			}
			replacement := leadingWhitespace(r.lines[idx]) + target
			if replacement != r.lines[idx] {
				r.lines[idx] = replacement
				r.changed = true
				r.note(*b, attr.Name, KindUpdate,
					fmt.Sprintf("updated %s at line %d to %s", attr.Name, idx+1, attr.Value))
			}

		case StateCommented:
			// Always turn a commented assignment on, enforcement or not.
			// Any stale value in the comment is discarded.
			ind := leadingWhitespace(r.lines[idx])
			if ind == "" {
				ind = indent
			}
			replacement := ind + target
			if replacement != r.lines[idx] {
				r.lines[idx] = replacement
				r.changed = true
				r.note(*b, attr.Name, KindUncomment,
					fmt.Sprintf("uncommented and normalized %s at line %d", attr.Name, idx+1))
			} else {
				r.note(*b, attr.Name, KindNoop,
					fmt.Sprintf("no change needed at line %d for %s", idx+1, attr.Name))
			}

		case StateAbsent:
			r.insertLine(b.End, indent+target)
			r.note(*b, attr.Name, KindAppend,
				fmt.Sprintf("appended %s before line %d", attr.Name, b.End+1))
			b.End++
			delta++
		}
	}

	log.Tracef("block reconciled: start=%d end=%d delta=%d", b.Start+1, b.End+1, delta)
	return delta
}

// innerIndent infers the block's interior indentation from the leading
// whitespace of the first non-blank line after the header. Falls back to
// two spaces when no interior line is non-blank or the first one starts at
// column zero.
func (r *run) innerIndent(b Block) string {
	for k := b.Start + 1; k <= b.End && k < len(r.lines); k++ {
		if strings.TrimSpace(r.lines[k]) == "" {
			continue
		}
		if ind := leadingWhitespace(r.lines[k]); ind != "" {
			return ind
		}
		break
	}
	return "  "
}
