// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfpatch/tfpatch/internal/patch"
)

var reportMessages = []patch.Message{
	{
		StartLine: 1,
		EndLine:   6,
		Attr:      "tunnel1_startup_action",
		Kind:      patch.KindAppend,
		Text:      "appended tunnel1_startup_action before line 6",
	},
	{Kind: patch.KindInfo, Text: "nothing to do"},
}

var reportFindings = []patch.Finding{
	{
		Block: patch.Block{Start: 0, End: 3},
		Attr:  "tunnel1_startup_action",
		State: patch.StateOtherValue,
		Line:  2,
	},
	{
		Block: patch.Block{Start: 0, End: 3},
		Attr:  "tunnel2_dpd_timeout_action",
		State: patch.StateAbsent,
	},
}

func TestEmitMessagesText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitMessages(&buf, reportMessages, "text"))

	out := buf.String()
	assert.Contains(t, out, "Summary:")
	assert.Contains(t, out, " - [1-6] appended tunnel1_startup_action before line 6")
	assert.Contains(t, out, " - nothing to do")
}

func TestEmitMessagesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitMessages(&buf, reportMessages, "json"))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "appended", decoded[0]["kind"])
	assert.Equal(t, float64(1), decoded[0]["startLine"])
	assert.Equal(t, "info", decoded[1]["kind"])
}

func TestEmitMessagesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitMessages(&buf, reportMessages, "yaml"))

	out := buf.String()
	assert.Contains(t, out, "kind: appended")
	assert.Contains(t, out, "attr: tunnel1_startup_action")
}

func TestEmitFindingsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitFindings(&buf, reportFindings, "text"))

	out := buf.String()
	assert.Contains(t, out, "[1-4] drift     tunnel1_startup_action (line 2)")
	assert.Contains(t, out, "[1-4] missing   tunnel2_dpd_timeout_action")
}

func TestEmitFindingsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitFindings(&buf, reportFindings, "json"))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "drift", decoded[0]["state"])
	assert.Equal(t, "missing", decoded[1]["state"])
}

func TestEmitFindingsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitFindings(&buf, reportFindings, "yaml"))

	out := buf.String()
	assert.Contains(t, out, "state: drift")
	assert.Contains(t, out, "state: missing")
}
