// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/tfpatch/tfpatch/internal/log"
)

// Check parses src as HCL native syntax and returns an error describing the
// diagnostics if the text does not parse cleanly. filename is only used in
// diagnostic positions.
func Check(filename string, src []byte) error {
	_, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return fmt.Errorf("%s failed syntax check: %s", filename, diags.Error())
	}
	log.Debugf("syntax check passed: file=%s", filename)
	return nil
}
