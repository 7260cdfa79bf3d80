// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileArg(t *testing.T) {
	tests := []struct {
		name      string
		setupPath func(t *testing.T) string
		wantErr   bool
		errIs     error
	}{
		{
			name: "absolute_path",
			setupPath: func(t *testing.T) string {
				f := filepath.Join(t.TempDir(), "main.tf")
				if err := os.WriteFile(f, []byte("# tf\n"), 0600); err != nil {
					t.Fatalf("failed to create temp file: %v", err)
				}
				return f
			},
			wantErr: false,
		},
		{
			name: "relative_path",
			setupPath: func(t *testing.T) string {
				tmpDir := t.TempDir()
				f := filepath.Join(tmpDir, "vpn.tf")
				if err := os.WriteFile(f, []byte("# tf\n"), 0600); err != nil {
					t.Fatalf("failed to create temp file: %v", err)
				}
				oldCwd, err := os.Getwd()
				if err != nil {
					t.Fatalf("failed to get cwd: %v", err)
				}
				if err := os.Chdir(tmpDir); err != nil {
					t.Fatalf("failed to chdir: %v", err)
				}
				t.Cleanup(func() {
					_ = os.Chdir(oldCwd)
				})
				return "vpn.tf"
			},
			wantErr: false,
		},
		{
			name: "nonexistent_file",
			setupPath: func(t *testing.T) string {
				return "/nonexistent/path/that/does/not/exist.tf"
			},
			wantErr: true,
			errIs:   os.ErrNotExist,
		},
		{
			name: "directory_not_file",
			setupPath: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr: true,
			errIs:   os.ErrInvalid,
		},
		{
			name: "empty_path",
			setupPath: func(t *testing.T) string {
				return ""
			},
			wantErr: true,
			errIs:   os.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setupPath(t)

			abs, err := ParseFileArg(path)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			assert.NoError(t, err)
			assert.FileExists(t, abs)
			assert.True(t, filepath.IsAbs(abs))
		})
	}
}
