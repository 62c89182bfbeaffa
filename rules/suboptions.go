package rules

import (
	"fmt"
	"sort"
	"strings"
)

// CommonParentFlags is the fixed parent set the original tooling checked
// sub-option dependencies against. ValidateAll defaults to checking every
// distinct requires_parent target in the ruleset instead; pass this via
// WithParentFlags for strict parity with the historical behavior.
var CommonParentFlags = []string{"--proxy", "--ssl", "--tcp", "--udp", "--icmp"}

// ParentFlags returns every distinct requires_parent target declared in
// the restriction table, sorted.
func ParentFlags(restrictions map[string]FlagRestriction) []string {
	seen := make(map[string]bool)
	for _, r := range restrictions {
		if r.RequiresParent != "" {
			seen[r.RequiresParent] = true
		}
	}
	parents := make([]string, 0, len(seen))
	for p := range seen {
		parents = append(parents, p)
	}
	sort.Strings(parents)
	return parents
}

// CheckSubOptions reports enabled flags that declare parent as their
// requires_parent while the parent itself is not enabled. All offending
// sub-options are collected into a single error. An enabled parent, or no
// enabled dependents, is valid.
func CheckSubOptions(flags FlagMap, restrictions map[string]FlagRestriction, parent string) (bool, []string) {
	if Enabled(flags[parent]) {
		return true, nil
	}

	var dependents []string
	for flag, r := range restrictions {
		if r.RequiresParent == parent && Enabled(flags[flag]) {
			dependents = append(dependents, flag)
		}
	}
	if len(dependents) == 0 {
		return true, nil
	}
	sort.Strings(dependents)

	return false, []string{fmt.Sprintf("Flags %s require parent flag '%s' to be set",
		strings.Join(dependents, ", "), parent)}
}
