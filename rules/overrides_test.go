package rules

import (
	"reflect"
	"testing"
)

func TestApplyOverrides_RemovesOverridden(t *testing.T) {
	restrictions := map[string]FlagRestriction{
		"-A": {Overrides: []string{"-sT"}},
	}
	out, removed := ApplyOverrides(FlagMap{"-A": true, "-sT": true}, restrictions)

	if _, present := out["-sT"]; present {
		t.Errorf("-sT not removed: %v", out)
	}
	if !reflect.DeepEqual(removed, []string{"-sT"}) {
		t.Errorf("removed = %v, want [-sT]", removed)
	}
}

func TestApplyOverrides_PureSetDifference(t *testing.T) {
	restrictions := map[string]FlagRestriction{
		"A": {Overrides: []string{"B", "X"}},
	}
	in := FlagMap{"A": true, "B": "v", "C": 1}
	out, removed := ApplyOverrides(in, restrictions)

	// Never adds: every key of out must come from in, and removed must be
	// exactly the difference.
	for k := range out {
		if _, present := in[k]; !present {
			t.Errorf("override added flag %q", k)
		}
	}
	if !reflect.DeepEqual(removed, []string{"B"}) {
		t.Errorf("removed = %v, want [B] (X was never present)", removed)
	}
	if len(out)+len(removed) != len(in) {
		t.Errorf("set difference violated: out=%v removed=%v in=%v", out, removed, in)
	}
}

func TestApplyOverrides_MutualOverridesRemoveBoth(t *testing.T) {
	restrictions := map[string]FlagRestriction{
		"A": {Overrides: []string{"B"}},
		"B": {Overrides: []string{"A"}},
	}
	out, removed := ApplyOverrides(FlagMap{"A": true, "B": true}, restrictions)

	// No self-protection: removal is a set operation over the initially
	// enabled declarations, so both go.
	if len(out) != 0 {
		t.Errorf("expected both removed, got %v", out)
	}
	if !reflect.DeepEqual(removed, []string{"A", "B"}) {
		t.Errorf("removed = %v, want [A B]", removed)
	}
}

func TestApplyOverrides_DisabledFlagOverridesNothing(t *testing.T) {
	restrictions := map[string]FlagRestriction{
		"A": {Overrides: []string{"B"}},
	}
	out, removed := ApplyOverrides(FlagMap{"A": false, "B": true}, restrictions)

	if _, present := out["B"]; !present {
		t.Errorf("disabled flag removed B: %v", out)
	}
	if len(removed) != 0 {
		t.Errorf("removed = %v, want empty", removed)
	}
}

func TestApplyOverrides_InputNotMutated(t *testing.T) {
	restrictions := map[string]FlagRestriction{
		"A": {Overrides: []string{"B"}},
	}
	in := FlagMap{"A": true, "B": true}
	_, _ = ApplyOverrides(in, restrictions)

	if len(in) != 2 {
		t.Errorf("input map mutated: %v", in)
	}
}
