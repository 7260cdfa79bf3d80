// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package textfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/vpn.tf")
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_SplitsLines(t *testing.T) {
	path := writeTemp(t, "main.tf", "a\nb\nc\n")
	doc, err := Load(path)
	require.NoError(t, err)
	// Trailing newline yields a final empty element, by design.
	assert.Equal(t, []string{"a", "b", "c", ""}, doc.Lines)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "lf_with_trailing_newline", content: "a\nb\n"},
		{name: "lf_without_trailing_newline", content: "a\nb"},
		{name: "crlf", content: "a\r\nb\r\n"},
		{name: "crlf_without_trailing_newline", content: "a\r\nb"},
		{name: "empty", content: ""},
		{name: "blank_lines", content: "a\n\n\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "rt.tf", tt.content)
			doc, err := Load(path)
			require.NoError(t, err)

			// An untouched buffer must render back byte-identical.
			assert.Equal(t, tt.content, doc.Render(doc.Lines))
		})
	}
}

func TestWrite_PreservesConventions(t *testing.T) {
	path := writeTemp(t, "w.tf", "a\r\nb\r\n")
	doc, err := Load(path)
	require.NoError(t, err)

	lines := append([]string{}, doc.Lines...)
	lines[0] = "changed"
	require.NoError(t, doc.Write(lines))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "changed\r\nb\r\n", string(out))
}

func TestBackup(t *testing.T) {
	content := "original\n"
	path := writeTemp(t, "b.tf", content)
	doc, err := Load(path)
	require.NoError(t, err)

	// Mutate and write, then confirm the backup still holds the original.
	require.NoError(t, doc.Write([]string{"mutated", ""}))
	bak, err := doc.Backup()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(bak, path+"."))
	assert.True(t, strings.HasSuffix(bak, ".bak"))

	raw, err := os.ReadFile(bak)
	require.NoError(t, err)
	assert.Equal(t, content, string(raw))
}
