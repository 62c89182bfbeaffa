package rules

// ApplyImplications auto-enables every flag implied by an enabled flag,
// repeating full passes until a pass adds nothing. The fixed point
// guarantees transitive chains (A implies B, B implies C) resolve no
// matter how the rules are declared. The input map is not mutated.
//
// Passes are bounded by len(restrictions)+1: each productive pass adds at
// least one flag drawn from the restriction table, so a cyclic implies
// graph cannot loop (re-adding a present key is a no-op).
func ApplyImplications(flags FlagMap, restrictions map[string]FlagRestriction) FlagMap {
	out := flags.clone()

	for pass := 0; pass <= len(restrictions); pass++ {
		changed := false
		for _, flag := range sortedKeys(out) {
			if !Enabled(out[flag]) {
				continue
			}
			for _, implied := range restrictions[flag].Implies {
				if _, present := out[implied]; !present {
					out[implied] = true
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return out
}
