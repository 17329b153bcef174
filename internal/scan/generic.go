package scan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/avelkor/sweepwin/internal/rules"
)

// driveAnchored reports whether a path template begins with a
// drive-letter-and-colon prefix (e.g., `C:\Windows\Temp`).
func driveAnchored(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// resolveTemplate rewrites a drive-anchored template for the session's
// drive selector: one concrete path per fixed drive under "ALL", or a
// single substituted path for a specific drive. Non-anchored templates
// pass through unchanged.
func (s *Session) resolveTemplate(template string) []string {
	if template == "" {
		return nil
	}
	if !driveAnchored(template) {
		return []string{template}
	}
	rest := template[2:]
	if s.drive == DriveAll {
		letters := s.listDrives()
		resolved := make([]string, 0, len(letters))
		for _, d := range letters {
			resolved = append(resolved, d+rest)
		}
		return resolved
	}
	return []string{s.drive + rest}
}

// scanGeneric walks every resolved path of a generic rule and folds the
// matching files into the result. Each template is attempted
// independently; a failure on one records an error note but does not
// stop the others, and a later template's failure replaces the note.
func (s *Session) scanGeneric(r rules.Rule, res *Result) {
	exts := make(map[string]bool, len(r.Extensions))
	for _, e := range r.Extensions {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[e] = true
	}
	pattern := strings.ToLower(r.Pattern)

	for _, template := range r.Paths {
		if s.cancelled.Load() {
			return
		}
		for _, root := range s.resolveTemplate(template) {
			if _, err := os.Stat(longPath(root)); err != nil {
				// Resolved paths that don't exist are expected on most
				// machines and are not an error.
				continue
			}
			if err := s.walkGeneric(root, exts, pattern, res); err != nil {
				if errors.Is(err, fs.ErrPermission) {
					res.Err = "permission denied: administrator rights required"
				} else {
					res.Err = err.Error()
				}
			}
		}
	}
}

// walkGeneric runs an explicit-stack depth-first traversal from root,
// counting regular files that pass the extension and pattern filters.
// Symbolic links and junctions are never followed. A listing failure at
// the root is returned; below the root it aborts only that directory.
func (s *Session) walkGeneric(root string, exts map[string]bool, pattern string, res *Result) error {
	entries, err := os.ReadDir(longPath(root))
	if err != nil {
		return err
	}

	stack := []string{}
	s.scanEntries(root, entries, exts, pattern, res, &stack)

	for len(stack) > 0 {
		if s.cancelled.Load() {
			return nil
		}
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(longPath(dir))
		if err != nil {
			// Unreadable subdirectory: skip its listing, keep going.
			continue
		}
		s.scanEntries(dir, entries, exts, pattern, res, &stack)
	}
	return nil
}

// scanEntries processes one directory listing: files are matched against
// the filters, subdirectories are pushed for later traversal. Pushing in
// reverse keeps the visit order identical to plain recursion.
func (s *Session) scanEntries(dir string, entries []fs.DirEntry, exts map[string]bool, pattern string, res *Result, stack *[]string) {
	var subdirs []string

	for _, e := range entries {
		if s.cancelled.Load() {
			return
		}
		path := filepath.Join(dir, e.Name())

		if e.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}
		// Anything that is not a plain file (symlinks, junctions, device
		// files) is neither counted nor followed.
		if !e.Type().IsRegular() {
			continue
		}
		if len(exts) > 0 && !exts[strings.ToLower(filepath.Ext(path))] {
			continue
		}
		if pattern != "" && !strings.Contains(strings.ToLower(path), pattern) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Entry vanished or became unreadable mid-scan.
			continue
		}
		res.TotalSize += info.Size()
		res.FileCount++
		res.MatchedPaths = append(res.MatchedPaths, path)
	}

	for i := len(subdirs) - 1; i >= 0; i-- {
		*stack = append(*stack, subdirs[i])
	}
}
