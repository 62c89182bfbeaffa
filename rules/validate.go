package rules

import (
	"fmt"

	"github.com/zero-day-ai/toolsmith/privilege"
)

// Option configures a ValidateAll run.
type Option func(*options)

type options struct {
	elevation   privilege.Elevation
	parentFlags []string
}

// WithElevation substitutes the elevation query used for privilege
// checks. Tests pass a fake here; the default is the real process query.
func WithElevation(e privilege.Elevation) Option {
	return func(o *options) { o.elevation = e }
}

// WithParentFlags fixes the parent set the sub-option dependency check
// iterates. The default derives the set from the ruleset itself; pass
// CommonParentFlags for parity with the historical fixed list.
func WithParentFlags(parents []string) Option {
	return func(o *options) { o.parentFlags = parents }
}

// ValidateAll runs the full compatibility pipeline:
//
//  1. Service compatibility (blocking, incl. service-level privileges).
//  2. Implication resolution to a fixed point.
//  3. Override resolution; removals become warnings.
//  4. Flag compatibility on the resolved map.
//  5. Constraint guards.
//  6. Mutual-exclusion groups.
//  7. Privilege requirements for the first service and every enabled
//     flag; shortfalls here are warnings, not errors.
//  8. Sub-option parent dependencies.
//
// The returned Report is valid iff no step produced an error; warnings
// never block. The inputs are not mutated: Report.Flags is a fresh map
// holding the normalized result that command construction should consume.
//
// A non-nil error return means the ruleset itself is malformed
// (ErrInvalidRuleSet); such failures are configuration problems and are
// deliberately kept out of Report.Errors.
func ValidateAll(services []string, flags FlagMap, rs *RuleSet, opts ...Option) (*Report, error) {
	if rs == nil {
		return nil, fmt.Errorf("%w: nil ruleset", ErrInvalidRuleSet)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var errs, warnings []string

	_, svcErrs := CheckServices(services, rs, o.elevation)
	errs = append(errs, svcErrs...)

	working := ApplyImplications(flags, rs.FlagRestrictions)

	working, removed := ApplyOverrides(working, rs.FlagRestrictions)
	for _, flag := range removed {
		warnings = append(warnings, fmt.Sprintf("Flag override: Removed %s due to conflicting flag", flag))
	}

	_, flagErrs, flagWarnings := CheckFlags(working, rs.FlagRestrictions)
	errs = append(errs, flagErrs...)
	warnings = append(warnings, flagWarnings...)

	_, guardErrs, err := CheckGuards(working, rs.FlagRestrictions)
	if err != nil {
		return nil, err
	}
	errs = append(errs, guardErrs...)

	_, mutexErrs := CheckMutexGroups(working, rs.MutexGroups)
	errs = append(errs, mutexErrs...)

	warnings = append(warnings, privilegeWarnings(services, working, rs, o.elevation)...)

	parents := o.parentFlags
	if parents == nil {
		parents = ParentFlags(rs.FlagRestrictions)
	}
	for _, parent := range parents {
		_, subErrs := CheckSubOptions(working, rs.FlagRestrictions, parent)
		errs = append(errs, subErrs...)
	}

	return &Report{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
		Flags:    working,
	}, nil
}

// privilegeWarnings performs the advisory privilege pass: once for the
// first selected service (if any) and once per enabled flag declaring a
// requirement. The asymmetry with the blocking service check in
// CheckServices is intentional and preserved.
func privilegeWarnings(services []string, flags FlagMap, rs *RuleSet, elev privilege.Elevation) []string {
	var warnings []string

	if len(services) > 0 {
		if r, restricted := rs.ServiceRestrictions[services[0]]; restricted && r.RequiresPrivileges != "" {
			if ok, msg := privilege.Check(r.RequiresPrivileges, elev); !ok {
				warnings = append(warnings, fmt.Sprintf("Service '%s': %s", services[0], msg))
			}
		}
	}

	for _, flag := range sortedKeys(flags) {
		if !Enabled(flags[flag]) {
			continue
		}
		r, restricted := rs.FlagRestrictions[flag]
		if !restricted || r.RequiresPrivileges == "" {
			continue
		}
		if ok, msg := privilege.Check(r.RequiresPrivileges, elev); !ok {
			warnings = append(warnings, fmt.Sprintf("Flag '%s': %s", flag, msg))
		}
	}

	return warnings
}
