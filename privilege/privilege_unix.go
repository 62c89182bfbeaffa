//go:build !windows

package privilege

import "os"

const deniedMessage = "Root privileges required"

type osElevation struct{}

// IsElevated reports whether the effective uid is zero.
func (osElevation) IsElevated() (bool, error) {
	return os.Geteuid() == 0, nil
}
