// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package patch

import "fmt"

// Kind labels what the engine did (or declined to do) for one attribute in
// one block.
type Kind string

const (
	// KindNoop means the attribute was already in the desired state.
	KindNoop Kind = "noop"
	// KindSkip means a drifted value was left alone because enforcement
	// was off.
	KindSkip Kind = "skipped"
	// KindUpdate means a drifted value was overwritten under enforcement.
	KindUpdate Kind = "updated"
	// KindUncomment means a commented assignment was turned on and
	// normalized to the desired value.
	KindUncomment Kind = "uncommented"
	// KindAppend means a missing assignment was inserted before the
	// block's closing brace.
	KindAppend Kind = "appended"
	// KindTidy means blank lines between an adjacency pair were removed.
	KindTidy Kind = "tidied"
	// KindMove means the second member of an adjacency pair was relocated
	// to follow the first.
	KindMove Kind = "moved"
	// KindInfo carries run-level notes, such as no blocks being found.
	KindInfo Kind = "info"
)

// Message is one human-readable change-log entry, tagged with the 1-based
// line range of the originating block for traceability. StartLine is zero
// for run-level messages.
type Message struct {
	StartLine int    `yaml:"startLine,omitempty" json:"startLine,omitempty"`
	EndLine   int    `yaml:"endLine,omitempty" json:"endLine,omitempty"`
	Attr      string `yaml:"attr,omitempty" json:"attr,omitempty"`
	Kind      Kind   `yaml:"kind" json:"kind"`
	Text      string `yaml:"text" json:"text"`
}

// String renders the entry the way the text report prints it.
func (m Message) String() string {
	if m.StartLine == 0 {
		return m.Text
	}
	return fmt.Sprintf("[%d-%d] %s", m.StartLine, m.EndLine, m.Text)
}

// Result is what one Apply run hands back to the caller: the finished
// buffer, whether anything changed, and the ordered change log.
type Result struct {
	Lines    []string
	Changed  bool
	Messages []Message
}
