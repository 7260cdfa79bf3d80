// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package textfile loads a text file into an ordered line buffer and writes
// a mutated buffer back with the file's original conventions intact: CRLF
// versus LF line endings, the presence or absence of a trailing newline,
// and the file mode. It also creates timestamped backups of the original
// bytes.
package textfile
