//go:build !windows

package core

import "runtime"

// OSVersionString identifies the host OS in report headers when not
// running on Windows.
func OSVersionString() string {
	return runtime.GOOS
}
