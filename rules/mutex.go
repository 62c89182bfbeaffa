package rules

import (
	"fmt"
	"strings"
)

// CheckMutexGroups enforces at-most-one-of-N selection within each named
// group. A violated group produces exactly one error naming every enabled
// member. Zero or one enabled member is valid.
func CheckMutexGroups(flags FlagMap, groups []MutexGroup) (bool, []string) {
	var errs []string

	for _, group := range groups {
		var enabled []string
		for _, flag := range group.Flags {
			if Enabled(flags[flag]) {
				enabled = append(enabled, flag)
			}
		}
		if len(enabled) > 1 {
			name := group.Name
			if name == "" {
				name = "flags"
			}
			errs = append(errs, fmt.Sprintf("Mutually exclusive %s: %s (only one can be selected)",
				name, strings.Join(enabled, ", ")))
		}
	}

	return len(errs) == 0, errs
}
