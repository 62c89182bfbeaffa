package rules

import "sort"

// ApplyOverrides removes every flag overridden by a currently enabled
// flag. This is a single pass, not a fixed point: an override exposed by
// removing a flag does not cascade, which keeps one strong selection from
// amplifying into a chain of removals. No self-protection is applied
// either; mutually overriding enabled flags remove each other.
//
// The input map is not mutated. The returned removed list is sorted and
// contains exactly the flags deleted; ApplyOverrides never adds flags.
func ApplyOverrides(flags FlagMap, restrictions map[string]FlagRestriction) (FlagMap, []string) {
	out := flags.clone()

	overridden := make(map[string]bool)
	for _, flag := range sortedKeys(flags) {
		if !Enabled(flags[flag]) {
			continue
		}
		for _, target := range restrictions[flag].Overrides {
			overridden[target] = true
		}
	}

	var removed []string
	for target := range overridden {
		if _, present := out[target]; present {
			delete(out, target)
			removed = append(removed, target)
		}
	}
	sort.Strings(removed)

	return out, removed
}
