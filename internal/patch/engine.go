// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package patch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tfpatch/tfpatch/internal/log"
)

// Engine applies one Spec to line buffers. It carries no per-run state and
// may be reused across files.
type Engine struct {
	spec     Spec
	enforce  bool
	matchers []matcher
}

// New builds an Engine for the given spec. When enforce is true, attributes
// present with a non-desired value are overwritten; otherwise they are
// reported and left alone.
func New(spec Spec, enforce bool) *Engine {
	return &Engine{
		spec:     spec,
		enforce:  enforce,
		matchers: newMatchers(spec.Attributes),
	}
}

// run holds the mutable state of one Apply invocation.
type run struct {
	*Engine
	lines   []string
	msgs    []Message
	changed bool
}

// Apply reconciles every matching block in the buffer and returns the
// finished lines, a changed flag, and the ordered change log. The input
// slice is cloned, never mutated.
//
// Reconciling a block can insert or delete lines, which shifts every block
// after it. A running delta carries those shifts forward so each block's
// range is corrected before it is touched.
func (e *Engine) Apply(lines []string) Result {
	r := &run{Engine: e, lines: slices.Clone(lines)}

	blocks := FindBlocks(r.lines, e.spec.ResourceType)
	if len(blocks) == 0 {
		r.info(fmt.Sprintf("no %q resource blocks found; nothing to do", e.spec.ResourceType))
		return Result{Lines: r.lines, Messages: r.msgs}
	}

	delta := 0
	for _, b := range blocks {
		b.Start += delta
		b.End += delta
		delta += r.reconcileBlock(&b)
		delta += r.normalizeBlock(&b)
	}
	log.Debugf("apply finished: blocks=%d changed=%v delta=%d", len(blocks), r.changed, delta)

	return Result{Lines: r.lines, Changed: r.changed, Messages: r.msgs}
}

// Finding describes the state of one attribute within one block.
type Finding struct {
	Block Block  `yaml:"block" json:"block"`
	Attr  string `yaml:"attr" json:"attr"`
	State State  `yaml:"state" json:"state"`
	Line  int    `yaml:"line,omitempty" json:"line,omitempty"`
}

// Scan classifies every target attribute in every block without mutating
// anything. Line is 1-based and zero when the attribute is absent.
func (e *Engine) Scan(lines []string) []Finding {
	var findings []Finding
	for _, b := range FindBlocks(lines, e.spec.ResourceType) {
		for ai, fs := range blockFindings(lines, b, e.matchers) {
			state, idx := fs.resolve()
			f := Finding{Block: b, Attr: e.spec.Attributes[ai].Name, State: state}
			if idx >= 0 {
				f.Line = idx + 1
			}
			findings = append(findings, f)
		}
	}
	return findings
}

// attrFinding records the first qualifying line per state for one attribute
// within one block. Indices are -1 when the state was not seen.
type attrFinding struct {
	exactIdx     int
	commentedIdx int
	otherIdx     int
}

// blockFindings scans the block's interior lines once and records, per
// attribute, the first occurrence of each state. The header and closing
// brace lines are never considered.
func blockFindings(lines []string, b Block, ms []matcher) []attrFinding {
	fs := make([]attrFinding, len(ms))
	for i := range fs {
		fs[i] = attrFinding{exactIdx: -1, commentedIdx: -1, otherIdx: -1}
	}
	for idx := b.Start + 1; idx < b.End && idx < len(lines); idx++ {
		for ai := range ms {
			switch ms[ai].classify(lines[idx]) {
			case StateExact:
				if fs[ai].exactIdx < 0 {
					fs[ai].exactIdx = idx
				}
			case StateCommented:
				if fs[ai].commentedIdx < 0 {
					fs[ai].commentedIdx = idx
				}
			case StateOtherValue:
				if fs[ai].otherIdx < 0 {
					fs[ai].otherIdx = idx
				}
			}
		}
	}
	return fs
}

// resolve collapses the per-state indices into the single state the
// reconciler acts on: exact wins, then other-value, then commented.
func (f attrFinding) resolve() (State, int) {
	switch {
	case f.exactIdx >= 0:
		return StateExact, f.exactIdx
	case f.otherIdx >= 0:
		return StateOtherValue, f.otherIdx
	case f.commentedIdx >= 0:
		return StateCommented, f.commentedIdx
	}
	return StateAbsent, -1
}

func (r *run) note(b Block, attr string, kind Kind, text string) {
	r.msgs = append(r.msgs, Message{
		StartLine: b.Start + 1,
		EndLine:   b.End + 1,
		Attr:      attr,
		Kind:      kind,
		Text:      text,
	})
}

func (r *run) info(text string) {
	r.msgs = append(r.msgs, Message{Kind: KindInfo, Text: text})
}

func (r *run) insertLine(idx int, line string) {
	r.lines = slices.Insert(r.lines, idx, line)
	r.changed = true
}

func (r *run) deleteLine(idx int) {
	r.lines = slices.Delete(r.lines, idx, idx+1)
	r.changed = true
}

func (r *run) matcherFor(name string) (matcher, bool) {
	for _, m := range r.matchers {
		if strings.EqualFold(m.attr.Name, name) {
			return m, true
		}
	}
	return matcher{}, false
}

func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isCommentOrBlank(line string) bool {
	t := strings.TrimSpace(line)
	return t == "" || strings.HasPrefix(t, "#") || strings.HasPrefix(t, "//")
}
