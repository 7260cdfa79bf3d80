// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
)

// ParseFileArg resolves a file argument to an absolute path. It returns an
// error if the path is empty, does not exist, or is not a regular file.
func ParseFileArg(path string) (string, error) {

	if path == "" {
		return "", os.ErrInvalid
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = filepath.Join(cwd, path)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if fi.IsDir() || !fi.Mode().IsRegular() {
		return "", os.ErrInvalid
	}

	return path, nil
}
