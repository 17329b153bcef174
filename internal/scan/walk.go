package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// longPath adds the \\?\ prefix for paths exceeding MAX_PATH on Windows.
func longPath(path string) string {
	if len(path) >= 260 && !strings.HasPrefix(path, `\\?\`) {
		return `\\?\` + filepath.Clean(path)
	}
	return path
}

// dirSize sums the sizes of all regular files under path. Symbolic links
// are not followed, and unreadable entries are skipped rather than
// failing the sum.
func dirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(longPath(path), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total
}
