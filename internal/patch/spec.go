// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package patch

import (
	"errors"
	"fmt"
)

// DefaultResourceType is the resource block type patched when no override
// is given.
const DefaultResourceType = "aws_vpn_connection"

// Attribute is one name/value pair the engine ensures inside each block.
// Value is the literal desired token, quotes included (e.g. `"start"`).
type Attribute struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// AdjacencyGroup names two attributes whose assignment lines must end up on
// consecutive lines within a block, in this order, with no blank separator.
type AdjacencyGroup struct {
	First  string `yaml:"first" json:"first"`
	Second string `yaml:"second" json:"second"`
}

// Spec is the immutable per-run configuration: which resource blocks to
// patch, which attributes to ensure, and which attribute pairs to keep
// adjacent. Attribute order only defines the append order when several
// attributes are missing from the same block.
type Spec struct {
	ResourceType string           `yaml:"resource" json:"resource"`
	Attributes   []Attribute      `yaml:"attributes" json:"attributes"`
	Groups       []AdjacencyGroup `yaml:"groups" json:"groups"`
}

// DefaultSpec returns the stock VPN tunnel spec: startup and DPD timeout
// actions for both tunnels, grouped per tunnel so each tunnel's pair sits
// together.
func DefaultSpec() Spec {
	return Spec{
		ResourceType: DefaultResourceType,
		Attributes: []Attribute{
			{Name: "tunnel1_startup_action", Value: `"start"`},
			{Name: "tunnel1_dpd_timeout_action", Value: `"restart"`},
			{Name: "tunnel2_startup_action", Value: `"start"`},
			{Name: "tunnel2_dpd_timeout_action", Value: `"restart"`},
		},
		Groups: []AdjacencyGroup{
			{First: "tunnel1_startup_action", Second: "tunnel1_dpd_timeout_action"},
			{First: "tunnel2_startup_action", Second: "tunnel2_dpd_timeout_action"},
		},
	}
}

// declared reports whether an attribute with the given name is in the spec.
func (s Spec) declared(name string) bool {
	for _, a := range s.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Validate checks that the spec is internally consistent: a resource type,
// at least one attribute, no duplicate attribute names, and adjacency
// groups that only reference declared attributes.
func (s Spec) Validate() error {
	if s.ResourceType == "" {
		return errors.New("resource type must not be empty")
	}
	if len(s.Attributes) == 0 {
		return errors.New("at least one target attribute is required")
	}
	seen := make(map[string]bool, len(s.Attributes))
	for _, a := range s.Attributes {
		if a.Name == "" || a.Value == "" {
			return fmt.Errorf("attribute %q must have both a name and a value", a.Name)
		}
		if seen[a.Name] {
			return fmt.Errorf("attribute %q declared more than once", a.Name)
		}
		seen[a.Name] = true
	}
	for _, g := range s.Groups {
		if g.First == g.Second {
			return fmt.Errorf("adjacency group pairs %q with itself", g.First)
		}
		for _, name := range []string{g.First, g.Second} {
			if !s.declared(name) {
				return fmt.Errorf("adjacency group references undeclared attribute %q", name)
			}
		}
	}
	return nil
}
