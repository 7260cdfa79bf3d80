// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	m := newMatcher(Attribute{Name: "tunnel1_startup_action", Value: `"start"`})

	tests := []struct {
		name string
		line string
		want State
	}{
		{
			name: "exact with standard indent",
			line: `  tunnel1_startup_action = "start"`,
			want: StateExact,
		},
		{
			name: "exact without spaces around equals",
			line: `tunnel1_startup_action="start"`,
			want: StateExact,
		},
		{
			name: "exact with uppercase name",
			line: `  TUNNEL1_STARTUP_ACTION = "start"`,
			want: StateExact,
		},
		{
			name: "exact with trailing whitespace",
			line: `  tunnel1_startup_action = "start"  `,
			want: StateExact,
		},
		{
			name: "different value",
			line: `  tunnel1_startup_action = "stop"`,
			want: StateOtherValue,
		},
		{
			name: "desired value with trailing comment",
			line: `  tunnel1_startup_action = "start" # pinned`,
			want: StateOtherValue,
		},
		{
			name: "hash commented",
			line: `  # tunnel1_startup_action = "start"`,
			want: StateCommented,
		},
		{
			name: "hash commented without space",
			line: `  #tunnel1_startup_action = "start"`,
			want: StateCommented,
		},
		{
			name: "slash commented with stale value",
			line: `  // tunnel1_startup_action = "stop"`,
			want: StateCommented,
		},
		{
			name: "unrelated attribute",
			line: `  vpn_gateway_id = "vgw-1"`,
			want: StateAbsent,
		},
		{
			name: "name without assignment",
			line: `  tunnel1_startup_action`,
			want: StateAbsent,
		},
		{
			name: "assignment with no value",
			line: `  tunnel1_startup_action =`,
			want: StateAbsent,
		},
		{
			name: "blank line",
			line: ``,
			want: StateAbsent,
		},
		{
			name: "name as substring of longer attribute",
			line: `  tunnel1_startup_action_extra = "start"`,
			want: StateAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.classify(tt.line))
		})
	}
}

func TestAnyValueLine(t *testing.T) {
	m := newMatcher(Attribute{Name: "tunnel1_startup_action", Value: `"start"`})

	assert.True(t, m.anyValueLine(`  tunnel1_startup_action = "start"`))
	assert.True(t, m.anyValueLine(`  tunnel1_startup_action = "stop"`))
	assert.False(t, m.anyValueLine(`  # tunnel1_startup_action = "start"`))
	assert.False(t, m.anyValueLine(`  // tunnel1_startup_action = "start"`))
	assert.False(t, m.anyValueLine(`  vpn_gateway_id = "vgw-1"`))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "ok", StateExact.String())
	assert.Equal(t, "commented", StateCommented.String())
	assert.Equal(t, "drift", StateOtherValue.String())
	assert.Equal(t, "missing", StateAbsent.String())
	assert.Equal(t, "unknown", State(99).String())
}
