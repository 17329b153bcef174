package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var (
	junkNow   = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	staleTime = junkNow.Add(-60 * 24 * time.Hour)
	freshTime = junkNow.Add(-time.Hour)
)

// junkSession returns a Session configured for direct junkSearch calls
// with a fixed clock and the default 30-day threshold.
func junkSession(t *testing.T, maxDepth int) *Session {
	t.Helper()
	opts := testOptions()
	opts.MaxDepth = maxDepth
	opts.Now = func() time.Time { return junkNow }
	return NewSession(nil, opts)
}

// mkJunkDir creates a junk-named directory with the given mtime and a
// known set of contained file sizes.
func mkJunkDir(t *testing.T, parent, name string, mtime time.Time, sizes ...int) string {
	t.Helper()
	dir := filepath.Join(parent, name)
	for i, size := range sizes {
		writeFile(t, filepath.Join(dir, "sub", "f"+string(rune('a'+i))+".bin"), size)
	}
	if len(sizes) == 0 {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Chtimes(dir, mtime, mtime); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestJunk_StaleDirectoryCountsOnce(t *testing.T) {
	root := t.TempDir()
	proj := filepath.Join(root, "projects", "app")
	junk := mkJunkDir(t, proj, "node_modules", staleTime, 2048, 1024)

	s := junkSession(t, 6)
	res := &Result{}
	s.junkSearch(root, 0, junkNow, res)

	if res.FileCount != 1 {
		t.Fatalf("matched directory counts as one unit, got %d", res.FileCount)
	}
	if res.TotalSize != 3072 {
		t.Errorf("TotalSize = %d, want full recursive 3072", res.TotalSize)
	}
	if len(res.MatchedPaths) != 1 || res.MatchedPaths[0] != junk {
		t.Errorf("MatchedPaths = %v, want [%s]", res.MatchedPaths, junk)
	}
}

func TestJunk_MatchedTreeNotDescended(t *testing.T) {
	root := t.TempDir()
	outer := mkJunkDir(t, root, "node_modules", staleTime, 100)
	// A nested junk directory inside a matched tree must not produce a
	// second match.
	mkJunkDir(t, filepath.Join(outer, "dep"), "node_modules", staleTime, 50)
	if err := os.Chtimes(outer, staleTime, staleTime); err != nil {
		t.Fatal(err)
	}

	s := junkSession(t, 6)
	res := &Result{}
	s.junkSearch(root, 0, junkNow, res)

	if res.FileCount != 1 {
		t.Errorf("got %d matches, want 1 (outer tree only)", res.FileCount)
	}
	if res.TotalSize != 150 {
		t.Errorf("TotalSize = %d, want 150 (nested sizes fold into the outer match)", res.TotalSize)
	}
}

func TestJunk_RecentDirectorySkippedEntirely(t *testing.T) {
	root := t.TempDir()
	fresh := mkJunkDir(t, root, "node_modules", freshTime, 4096)
	// Stale junk below a fresh junk dir: unreachable, because a
	// too-recent junk-named directory is not descended into either.
	mkJunkDir(t, filepath.Join(fresh, "dep"), "target", staleTime, 512)
	if err := os.Chtimes(fresh, freshTime, freshTime); err != nil {
		t.Fatal(err)
	}

	s := junkSession(t, 6)
	res := &Result{}
	s.junkSearch(root, 0, junkNow, res)

	if res.FileCount != 0 || res.TotalSize != 0 {
		t.Errorf("recent junk directory must contribute nothing, got %+v", res)
	}
}

func TestJunk_NameMatchCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	mkJunkDir(t, root, "NODE_MODULES", staleTime, 64)

	s := junkSession(t, 6)
	res := &Result{}
	s.junkSearch(root, 0, junkNow, res)

	if res.FileCount != 1 {
		t.Errorf("upper-cased junk name not matched, got %+v", res)
	}
}

func TestJunk_DepthBound(t *testing.T) {
	root := t.TempDir()
	// Depth of the listing that would discover each: shallow at 1,
	// deep at 3 — beyond a bound of 2.
	mkJunkDir(t, filepath.Join(root, "a"), "target", staleTime, 10)
	mkJunkDir(t, filepath.Join(root, "x", "y", "z"), "target", staleTime, 20)

	s := junkSession(t, 2)
	res := &Result{}
	s.junkSearch(root, 0, junkNow, res)

	if res.FileCount != 1 || res.TotalSize != 10 {
		t.Errorf("depth bound not honored, got count=%d size=%d", res.FileCount, res.TotalSize)
	}
}

func TestJunk_SkipSetAndHiddenNotDescended(t *testing.T) {
	root := t.TempDir()
	mkJunkDir(t, filepath.Join(root, "Windows"), "node_modules", staleTime, 10)
	mkJunkDir(t, filepath.Join(root, ".cache"), "node_modules", staleTime, 20)
	mkJunkDir(t, filepath.Join(root, "work"), "node_modules", staleTime, 40)

	s := junkSession(t, 6)
	res := &Result{}
	s.junkSearch(root, 0, junkNow, res)

	if res.FileCount != 1 || res.TotalSize != 40 {
		t.Errorf("skip-set/hidden directories must not be searched, got count=%d size=%d",
			res.FileCount, res.TotalSize)
	}
}

func TestJunk_FilesNeverMatch(t *testing.T) {
	root := t.TempDir()
	// A *file* named like a junk directory is not a match.
	writeFile(t, filepath.Join(root, "target"), 99)

	s := junkSession(t, 6)
	res := &Result{}
	s.junkSearch(root, 0, junkNow, res)

	if res.FileCount != 0 {
		t.Errorf("plain files must never match, got %+v", res)
	}
}

func TestJunk_CancelReturnsImmediately(t *testing.T) {
	root := t.TempDir()
	mkJunkDir(t, root, "node_modules", staleTime, 10)

	s := junkSession(t, 6)
	s.cancelled.Store(true)
	res := &Result{}
	s.junkSearch(root, 0, junkNow, res)

	if res.FileCount != 0 {
		t.Errorf("cancelled search must not accumulate, got %+v", res)
	}
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bin"), 1)
	writeFile(t, filepath.Join(dir, "x", "b.bin"), 2)
	writeFile(t, filepath.Join(dir, "x", "y", "c.bin"), 4)

	if got := dirSize(dir); got != 7 {
		t.Errorf("dirSize = %d, want 7", got)
	}
}

func TestDirSize_MissingPathIsZero(t *testing.T) {
	if got := dirSize(filepath.Join(t.TempDir(), "gone")); got != 0 {
		t.Errorf("dirSize of a missing path = %d, want 0", got)
	}
}
