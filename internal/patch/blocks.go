// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package patch

import (
	"regexp"
	"strings"

	"github.com/tfpatch/tfpatch/internal/log"
)

// Block is an inclusive line range [Start, End] within the buffer. Start is
// the header line; End is the line where cumulative brace depth returns to
// zero. Blocks never overlap and appear in file order.
type Block struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// headerPattern matches `resource "<type>" "<any name>" {` with flexible
// whitespace and a case-insensitive keyword.
func headerPattern(resourceType string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?i)^\s*resource\s+"` + regexp.QuoteMeta(resourceType) + `"\s+"[^"]+"\s*\{\s*$`)
}

// FindBlocks scans the buffer top to bottom and returns every matching
// resource block. Depth is tracked by counting '{' and '}' per line,
// starting at the header. A block still open at end of input is dropped;
// scanning resumes on the line after the header so malformed input is
// tolerated rather than fatal.
func FindBlocks(lines []string, resourceType string) []Block {
	header := headerPattern(resourceType)
	var blocks []Block
	for i := 0; i < len(lines); i++ {
		if !header.MatchString(lines[i]) {
			continue
		}
		depth := 0
		closed := false
		for j := i; j < len(lines); j++ {
			depth += strings.Count(lines[j], "{")
			depth -= strings.Count(lines[j], "}")
			if depth == 0 {
				blocks = append(blocks, Block{Start: i, End: j})
				i = j
				closed = true
				break
			}
		}
		if !closed {
			log.Debugf("unterminated block dropped: header=%d", i+1)
		}
	}
	log.Debugf("blocks located: type=%s count=%d", resourceType, len(blocks))
	return blocks
}
