//go:build !windows

package drives

import "errors"

// List needs WMI and is only available on Windows.
func List() ([]Info, error) {
	return nil, errors.New("drive capacity listing requires Windows")
}
