package rules

import (
	"fmt"

	"github.com/zero-day-ai/toolsmith/privilege"
)

// CheckServices validates that the selected service groups may be
// combined. For every ordered pair of distinct selected services (A, B),
// B appearing in A's incompatible_services produces an error. Only the
// declaring side's list is consulted; no symmetric closure is computed.
//
// Services declaring requires_privileges are checked against elev here at
// error severity. This is the blocking counterpart of the advisory
// flag-level privilege check performed later in the pipeline.
//
// An empty selection is valid. Duplicate selections are inert: a service
// is never checked against itself by id.
func CheckServices(selected []string, rs *RuleSet, elev privilege.Elevation) (bool, []string) {
	var errs []string
	if len(selected) == 0 {
		return true, nil
	}

	for _, id := range selected {
		r, restricted := rs.ServiceRestrictions[id]
		if !restricted {
			continue
		}

		for _, other := range selected {
			if other != id && contains(r.IncompatibleServices, other) {
				errs = append(errs, fmt.Sprintf("Service '%s' cannot be combined with '%s'", id, other))
			}
		}

		if r.RequiresPrivileges != "" {
			if ok, msg := privilege.Check(r.RequiresPrivileges, elev); !ok {
				errs = append(errs, fmt.Sprintf("Service '%s' requires %s privileges: %s", id, r.RequiresPrivileges, msg))
			}
		}

		// requires_flags is informational here; flag enforcement happens in
		// CheckFlags once the flag map is known.
	}

	return len(errs) == 0, errs
}
