//go:build windows

package privilege

import "golang.org/x/sys/windows"

const deniedMessage = "Administrator privileges required"

type osElevation struct{}

// IsElevated reports whether the process token carries elevation.
func (osElevation) IsElevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}
