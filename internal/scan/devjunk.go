package scan

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// junkDirNames are directory names that identify developer build
// artifacts and dependency caches worth reclaiming once stale.
var junkDirNames = map[string]bool{
	"node_modules":     true,
	"bower_components": true,
	"__pycache__":      true,
	".pytest_cache":    true,
	"target":           true,
	"dist":             true,
	"build":            true,
	"out":              true,
	".next":            true,
}

// devSkipDirNames are operating-system, program-install, and
// version-control directories the developer scan never descends into.
var devSkipDirNames = map[string]bool{
	"windows":                   true,
	"program files":             true,
	"program files (x86)":       true,
	"programdata":               true,
	"appdata":                   true,
	".git":                      true,
	".svn":                      true,
	"system volume information": true,
	"$recycle.bin":              true,
	"recovery":                  true,
	"msocache":                  true,
}

// scanDeveloperJunk searches each target drive for junk-named
// directories whose last modification is older than the age threshold.
// Drives that are not mounted or not accessible are skipped silently.
func (s *Session) scanDeveloperJunk(res *Result) {
	var targets []string
	if s.drive == DriveAll {
		targets = s.listDrives()
	} else {
		targets = []string{s.drive}
	}

	now := s.now()
	for _, drive := range targets {
		if s.cancelled.Load() {
			return
		}
		root := drive + `\`
		if _, err := os.Stat(root); err != nil {
			continue
		}
		s.junkSearch(root, 0, now, res)
	}
}

// junkSearch is the depth-bounded recursive descent. A junk-named
// directory older than the threshold is counted as a single unit with
// its full recursive size; a junk-named directory that is too recent is
// skipped entirely. Neither is descended into, so contents of a matched
// tree are never matched again.
func (s *Session) junkSearch(dir string, depth int, now time.Time, res *Result) {
	if s.cancelled.Load() || depth > s.maxDepth {
		return
	}

	entries, err := os.ReadDir(longPath(dir))
	if err != nil {
		return
	}

	for _, e := range entries {
		if s.cancelled.Load() {
			return
		}
		if !e.IsDir() {
			continue
		}

		name := strings.ToLower(e.Name())
		path := filepath.Join(dir, e.Name())

		if junkDirNames[name] {
			info, err := e.Info()
			if err != nil {
				continue
			}
			if now.Sub(info.ModTime()) > s.ageThreshold {
				res.TotalSize += dirSize(path)
				res.FileCount++
				res.MatchedPaths = append(res.MatchedPaths, path)
			}
			continue
		}

		if devSkipDirNames[name] || strings.HasPrefix(name, ".") {
			continue
		}
		s.junkSearch(path, depth+1, now, res)
	}
}
