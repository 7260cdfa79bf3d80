// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package textfile

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tfpatch/tfpatch/internal/log"
)

// Document is one loaded text file: its lines without terminators plus the
// newline conventions needed to write it back byte-faithfully when nothing
// changes.
type Document struct {
	Path  string
	Lines []string

	raw             []byte
	mode            os.FileMode
	crlf            bool
	trailingNewline bool
}

// Load reads the file at path into a Document. Line endings are normalized
// to LF for processing; the original convention is remembered and restored
// on write. A missing file is a hard error surfaced before any patching
// runs.
func Load(path string) (*Document, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := string(raw)
	d := &Document{
		Path: path,
		raw:  raw,
		mode: fi.Mode().Perm(),
		crlf: strings.Contains(text, "\r\n"),
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	d.trailingNewline = strings.HasSuffix(text, "\n")
	d.Lines = strings.Split(text, "\n")

	log.Debugf("file loaded: path=%s size=%s lines=%d crlf=%v",
		path, humanize.Bytes(uint64(len(raw))), len(d.Lines), d.crlf)
	return d, nil
}

// Render joins a line buffer back into file text using the document's
// original newline style and trailing-newline convention.
func (d *Document) Render(lines []string) string {
	text := strings.Join(lines, "\n")
	if d.trailingNewline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if d.crlf {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return text
}

// Write renders the buffer and writes it over the original file, keeping
// the original file mode.
func (d *Document) Write(lines []string) error {
	text := d.Render(lines)
	if err := os.WriteFile(d.Path, []byte(text), d.mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.Path, err)
	}
	log.Debugf("file written: path=%s size=%s", d.Path, humanize.Bytes(uint64(len(text))))
	return nil
}

// Backup writes the original, unmodified bytes to a timestamped sibling
// file and returns its path.
func (d *Document) Backup() (string, error) {
	ts := time.Now().Format("20060102-150405")
	bak := fmt.Sprintf("%s.%s.bak", d.Path, ts)
	if err := os.WriteFile(bak, d.raw, d.mode); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", bak, err)
	}
	log.Debugf("backup created: path=%s", bak)
	return bak, nil
}
