package rules

import (
	"errors"
	"sort"

	"github.com/zero-day-ai/toolsmith/privilege"
)

// ErrInvalidRuleSet indicates the ruleset itself is malformed (a
// configuration problem, not a user-input problem). It is returned from
// ValidateAll as a distinct error so callers can tell "fix your input"
// apart from "fix your manifest"; it never appears inside Report.Errors.
var ErrInvalidRuleSet = errors.New("invalid ruleset")

// FlagMap maps a flag token to its user-supplied value. Values are
// booleans, numbers, or strings as decoded from YAML or gathered from
// prompts. A flag is enabled iff its value is present and truthy: absence
// is distinct from an explicit false.
type FlagMap map[string]any

// Enabled reports whether a flag value counts as enabled. Only nil and
// false are disabled; zero and the empty string are deliberately truthy
// (a flag explicitly set to 0 still carries meaning on a command line).
func Enabled(v any) bool {
	return v != nil && v != false
}

// ServiceRestriction declares how a service group may be combined with
// others. Incompatibility is directional: only the declaring service's
// list is consulted, so asymmetric declarations are honored as written.
type ServiceRestriction struct {
	IncompatibleServices []string        `yaml:"incompatible_services"`
	CompatibleServices   []string        `yaml:"compatible_services"`
	RequiresPrivileges   privilege.Level `yaml:"requires_privileges"`

	// RequiresFlags is recorded for the benefit of prompt flows; it is not
	// enforced by CheckServices. Flag-level enforcement happens once the
	// flag map is known.
	RequiresFlags []string `yaml:"requires_flags"`
}

// DependsOn is a value-qualified parent requirement: the parent key must
// be present and equal the required value exactly. A nil Value means the
// parent must be true.
type DependsOn struct {
	// Placeholder and Flag are alternative spellings for the parent id;
	// Placeholder wins when both are set.
	Placeholder string `yaml:"placeholder"`
	Flag        string `yaml:"flag"`
	Value       any    `yaml:"value"`
}

// Parent returns the parent id the dependency points at.
func (d *DependsOn) Parent() string {
	if d.Placeholder != "" {
		return d.Placeholder
	}
	return d.Flag
}

// RequiredValue returns the value the parent must hold, defaulting to true.
func (d *DependsOn) RequiredValue() any {
	if d.Value == nil {
		return true
	}
	return d.Value
}

// FlagRestriction declares the compatibility rules for a single flag.
// Ids referenced inside a restriction need not themselves carry a
// restriction entry; absence means unrestricted.
type FlagRestriction struct {
	Requires           []string        `yaml:"requires"`
	IncompatibleWith   []string        `yaml:"incompatible_with"`
	Implies            []string        `yaml:"implies"`
	Overrides          []string        `yaml:"overrides"`
	DependsOn          *DependsOn      `yaml:"depends_on"`
	RequiresParent     string          `yaml:"requires_parent"`
	RequiresPrivileges privilege.Level `yaml:"requires_privileges"`

	// Constraint is an optional CEL expression that must hold while the
	// flag is enabled. Compiled once at manifest load time.
	Constraint *Guard `yaml:"constraint"`
}

// MutexGroup names a set of flags of which at most one may be enabled.
type MutexGroup struct {
	Name  string   `yaml:"name"`
	Flags []string `yaml:"flags"`
}

// RuleSet is the full rule table for one tool command. It is loaded once
// from a manifest and treated as read-only for the lifetime of the run.
type RuleSet struct {
	ServiceRestrictions map[string]ServiceRestriction `yaml:"service_restrictions"`
	FlagRestrictions    map[string]FlagRestriction    `yaml:"flag_restrictions"`
	MutexGroups         []MutexGroup                  `yaml:"mutually_exclusive_groups"`
}

// Report is the outcome of a full validation run. Valid is true iff
// Errors is empty; warnings never block. Flags holds the normalized flag
// map after implication and override resolution and is the only flag map
// command construction should consume.
type Report struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Flags    FlagMap
}

// clone copies a flag map so resolution stages never mutate their input.
func (f FlagMap) clone() FlagMap {
	out := make(FlagMap, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// sortedKeys returns the map's keys in lexical order. Go maps iterate in
// random order; sorting keeps error ordering reproducible across runs.
func sortedKeys(f FlagMap) []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
