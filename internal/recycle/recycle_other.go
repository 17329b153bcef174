//go:build !windows

package recycle

import "errors"

// Query is only implemented on Windows; elsewhere it reports failure so
// the category records an error note instead of fake zeros.
func Query(target string) (size, items int64, err error) {
	return 0, 0, errors.New("recycle bin query requires Windows")
}
