// Package privilege answers whether the current process runs with the
// elevated rights a service or flag declares it needs.
//
// The platform query (effective uid on unix, token elevation on Windows)
// is the one piece of ambient state in an otherwise pure validation
// pipeline, so it sits behind the narrow Elevation interface and is
// injected by callers; tests substitute a fake without touching real
// process identity. Results are not cached.
package privilege

import "strings"

// Level is a case-insensitive privilege tag from a manifest. "root",
// "admin", and "administrator" demand an elevated execution context; any
// other value, including "user" and unrecognized strings, is satisfied
// automatically.
type Level string

// Elevated reports whether the level demands an elevated process.
func (l Level) Elevated() bool {
	switch strings.ToLower(string(l)) {
	case "root", "admin", "administrator":
		return true
	default:
		return false
	}
}

// Elevation is the capability interface for the platform elevation query.
type Elevation interface {
	// IsElevated reports whether the current process holds elevated
	// rights. An error means the status could not be determined.
	IsElevated() (bool, error)
}

// OS returns the real platform elevation query: euid==0 on unix-like
// systems, an elevated token on Windows.
func OS() Elevation {
	return osElevation{}
}

// Check reports whether level's requirement is met by elev. A nil elev
// falls back to the real platform query. Query failures are treated as
// not elevated, with a message saying the status could not be determined.
func Check(level Level, elev Elevation) (ok bool, msg string) {
	if !level.Elevated() {
		return true, ""
	}
	if elev == nil {
		elev = OS()
	}
	elevated, err := elev.IsElevated()
	if err != nil {
		return false, "elevation status could not be determined"
	}
	if !elevated {
		return false, deniedMessage
	}
	return true, ""
}
