// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package patch

import "regexp"

// State is the classification of one attribute within one block. Exactly
// one state holds per attribute per block; only the first occurrence of a
// non-exact state is tracked when a block contains duplicates.
type State int

const (
	// StateAbsent means no line in the block mentions the attribute.
	StateAbsent State = iota
	// StateExact means an uncommented line already holds the desired value.
	StateExact
	// StateCommented means the first qualifying line is commented out
	// (value not checked).
	StateCommented
	// StateOtherValue means an uncommented line assigns a different value.
	StateOtherValue
)

// String renders the state the way the scan report prints it.
func (s State) String() string {
	switch s {
	case StateExact:
		return "ok"
	case StateCommented:
		return "commented"
	case StateOtherValue:
		return "drift"
	case StateAbsent:
		return "missing"
	}
	return "unknown"
}

// MarshalText renders the state as its string form in JSON reports.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalYAML renders the state as its string form in YAML reports.
func (s State) MarshalYAML() (any, error) {
	return s.String(), nil
}

// matcher holds the compiled line patterns for one attribute. Attribute
// names match case-insensitively with flexible whitespace; the desired
// value must match exactly.
type matcher struct {
	attr      Attribute
	exact     *regexp.Regexp
	commented *regexp.Regexp
	anyValue  *regexp.Regexp
}

func newMatcher(attr Attribute) matcher {
	name := regexp.QuoteMeta(attr.Name)
	value := regexp.QuoteMeta(attr.Value)
	return matcher{
		attr:      attr,
		exact:     regexp.MustCompile(`(?i)^\s*` + name + `\s*=\s*` + value + `\s*$`),
		commented: regexp.MustCompile(`(?i)^\s*(#|//)\s*` + name + `\s*=.*$`),
		anyValue:  regexp.MustCompile(`(?i)^\s*` + name + `\s*=\s*.+$`),
	}
}

func newMatchers(attrs []Attribute) []matcher {
	ms := make([]matcher, len(attrs))
	for i, a := range attrs {
		ms[i] = newMatcher(a)
	}
	return ms
}

// classify applies the priority chain: exact beats commented beats
// other-value. A line can therefore hold at most one state per attribute.
func (m matcher) classify(line string) State {
	switch {
	case m.exact.MatchString(line):
		return StateExact
	case m.commented.MatchString(line):
		return StateCommented
	case m.anyValue.MatchString(line):
		return StateOtherValue
	}
	return StateAbsent
}

// anyValueLine reports whether the line is an uncommented assignment of the
// attribute with any value, desired or not. The adjacency pass uses this
// since it runs after reconciliation, when lines are already normalized.
// Commented lines cannot match: the pattern is anchored at the attribute
// name after leading whitespace only.
func (m matcher) anyValueLine(line string) bool {
	return m.anyValue.MatchString(line)
}
