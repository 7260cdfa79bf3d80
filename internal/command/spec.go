// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfpatch/tfpatch/internal/config"
	"github.com/tfpatch/tfpatch/internal/log"
	"github.com/tfpatch/tfpatch/internal/patch"
)

// BuildSpec assembles the effective patch.Spec: stock defaults, then the
// config file's attribute and group lists, then --attr/--group flags, each
// layer replacing the previous one. When the attribute set is overridden
// without an explicit group list, the default groups are dropped since they
// reference attributes that may no longer be declared.
func BuildSpec(cmd *cli.Command) (patch.Spec, error) {
	spec := patch.DefaultSpec()
	spec.ResourceType = cmd.String("resource")

	attrsOverridden := false
	if entries, err := config.GetStringSlice("attributes"); err == nil && len(entries) > 0 {
		attrs, err := ParseAttrEntries(entries)
		if err != nil {
			return patch.Spec{}, fmt.Errorf("config attributes: %w", err)
		}
		spec.Attributes = attrs
		attrsOverridden = true
		log.Debugf("attributes from config: count=%d", len(attrs))
	}
	if entries := cmd.StringSlice("attr"); len(entries) > 0 {
		attrs, err := ParseAttrEntries(entries)
		if err != nil {
			return patch.Spec{}, err
		}
		spec.Attributes = attrs
		attrsOverridden = true
		log.Debugf("attributes from flags: count=%d", len(attrs))
	}

	groupsOverridden := false
	if entries, err := config.GetStringSlice("groups"); err == nil && len(entries) > 0 {
		groups, err := ParseGroupEntries(entries)
		if err != nil {
			return patch.Spec{}, fmt.Errorf("config groups: %w", err)
		}
		spec.Groups = groups
		groupsOverridden = true
	}
	if entries := cmd.StringSlice("group"); len(entries) > 0 {
		groups, err := ParseGroupEntries(entries)
		if err != nil {
			return patch.Spec{}, err
		}
		spec.Groups = groups
		groupsOverridden = true
	}

	if attrsOverridden && !groupsOverridden {
		spec.Groups = nil
	}

	if err := spec.Validate(); err != nil {
		return patch.Spec{}, err
	}
	return spec, nil
}

// ParseAttrEntries parses "name=value" entries into Attributes. The value
// is taken verbatim after the first '=', so quoted HCL values pass through
// untouched.
func ParseAttrEntries(entries []string) ([]patch.Attribute, error) {
	attrs := make([]patch.Attribute, 0, len(entries))
	for _, e := range entries {
		name, value, ok := strings.Cut(e, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("invalid attribute spec %q (want name=value)", e)
		}
		attrs = append(attrs, patch.Attribute{Name: name, Value: value})
	}
	return attrs, nil
}

// ParseGroupEntries parses "first,second" entries into AdjacencyGroups.
func ParseGroupEntries(entries []string) ([]patch.AdjacencyGroup, error) {
	groups := make([]patch.AdjacencyGroup, 0, len(entries))
	for _, e := range entries {
		first, second, ok := strings.Cut(e, ",")
		first = strings.TrimSpace(first)
		second = strings.TrimSpace(second)
		if !ok || first == "" || second == "" {
			return nil, fmt.Errorf("invalid group spec %q (want first,second)", e)
		}
		groups = append(groups, patch.AdjacencyGroup{First: first, Second: second})
	}
	return groups, nil
}
