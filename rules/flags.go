package rules

import "fmt"

// CheckFlags validates flag combinations against their restrictions.
// It expects a flag map that has already been through ApplyImplications
// and ApplyOverrides. Disabled flags impose no requirements and cannot
// violate anything.
//
// Errors accumulate in sorted flag order so output is reproducible.
// Incompatibility is checked only from the declaring flag's list; if both
// sides declare each other incompatible, both directions error
// independently.
func CheckFlags(flags FlagMap, restrictions map[string]FlagRestriction) (bool, []string, []string) {
	var errs []string
	var warnings []string

	for _, flag := range sortedKeys(flags) {
		if !Enabled(flags[flag]) {
			continue
		}

		r, restricted := restrictions[flag]
		if !restricted {
			continue
		}

		for _, req := range r.Requires {
			if !Enabled(flags[req]) {
				errs = append(errs, fmt.Sprintf("Flag '%s' requires '%s' to be set", flag, req))
			}
		}

		for _, inc := range r.IncompatibleWith {
			if Enabled(flags[inc]) {
				errs = append(errs, fmt.Sprintf("Flag '%s' cannot be used with '%s'", flag, inc))
			}
		}

		if d := r.DependsOn; d != nil {
			parent := d.Parent()
			if _, present := flags[parent]; !present {
				errs = append(errs, fmt.Sprintf("Flag '%s' requires parent flag '%s' to be set", flag, parent))
			} else if flags[parent] != d.RequiredValue() {
				// Exact comparison: "1" does not satisfy a required value of 1.
				errs = append(errs, fmt.Sprintf("Flag '%s' requires '%s' to be '%v'", flag, parent, d.RequiredValue()))
			}
		}

		if parent := r.RequiresParent; parent != "" {
			if !Enabled(flags[parent]) {
				errs = append(errs, fmt.Sprintf("Flag '%s' requires parent flag '%s' to be set", flag, parent))
			}
		}
	}

	return len(errs) == 0, errs, warnings
}
