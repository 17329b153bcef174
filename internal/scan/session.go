package scan

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/avelkor/sweepwin/internal/drives"
	"github.com/avelkor/sweepwin/internal/recycle"
	"github.com/avelkor/sweepwin/internal/rules"
)

// DriveAll selects every mounted fixed drive instead of a single one.
const DriveAll = "ALL"

// ProgressFunc receives coarse scan progress. It is invoked synchronously
// on the scanning goroutine, so it must not block indefinitely.
type ProgressFunc func(label string, percent int)

// RecycleQueryFunc queries aggregate recycle-bin statistics for a drive
// root like `C:\`, or for all drives when target is empty.
type RecycleQueryFunc func(target string) (size, items int64, err error)

// DriveListFunc enumerates the mounted fixed drives ("C:", "D:", ...).
type DriveListFunc func() []string

// Options configures a Session. Zero values select the defaults: the
// system's platform capabilities, a single-drive "C:" scan, a 30-day
// developer-junk age threshold, and a depth bound of 6.
type Options struct {
	// Drive is "ALL" or a single drive selector like "C:".
	Drive string

	// Progress, when set, receives per-rule progress notifications.
	Progress ProgressFunc

	// ListDrives overrides fixed-drive enumeration.
	ListDrives DriveListFunc

	// QueryRecycleBin overrides the platform recycle-bin query.
	QueryRecycleBin RecycleQueryFunc

	// AgeThreshold is the staleness cutoff for developer-junk directories.
	AgeThreshold time.Duration

	// MaxDepth bounds the developer-junk descent from each drive root.
	MaxDepth int

	// Now overrides the clock used for age checks.
	Now func() time.Time
}

const (
	defaultAgeThreshold = 30 * 24 * time.Hour
	defaultMaxDepth     = 6
)

// Session runs rule-driven cleanup-candidate scans. Construct it once and
// call ScanAll repeatedly; each run discards the previous results. Cancel
// may be called from any goroutine to stop the in-flight run early.
//
// The session never deletes anything: all filesystem access is read-only.
type Session struct {
	rules        []rules.Rule
	drive        string
	progress     ProgressFunc
	listDrives   DriveListFunc
	queryBin     RecycleQueryFunc
	ageThreshold time.Duration
	maxDepth     int
	now          func() time.Time

	cancelled atomic.Bool
	results   map[string]*Result
}

// NewSession creates a Session over the given rule list.
func NewSession(ruleset []rules.Rule, opts Options) *Session {
	s := &Session{
		rules:        ruleset,
		drive:        normalizeDrive(opts.Drive),
		progress:     opts.Progress,
		listDrives:   opts.ListDrives,
		queryBin:     opts.QueryRecycleBin,
		ageThreshold: opts.AgeThreshold,
		maxDepth:     opts.MaxDepth,
		now:          opts.Now,
	}
	if s.listDrives == nil {
		s.listDrives = drives.Fixed
	}
	if s.queryBin == nil {
		s.queryBin = recycle.Query
	}
	if s.ageThreshold <= 0 {
		s.ageThreshold = defaultAgeThreshold
	}
	if s.maxDepth <= 0 {
		s.maxDepth = defaultMaxDepth
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// normalizeDrive upper-cases the selector and strips any trailing
// slashes, so "c:\" and "C:" are the same selector.
func normalizeDrive(drive string) string {
	d := strings.ToUpper(strings.TrimRight(drive, `\/`))
	if d == "" {
		return "C:"
	}
	return d
}

// Cancel requests early termination of the in-flight scan. The scanning
// goroutine observes the flag at every directory-listing step, so the
// latency is bounded by a single entry visit, not a whole subtree.
func (s *Session) Cancel() {
	s.cancelled.Store(true)
}

// ScanAll scans every configured rule in declared order and returns the
// results keyed by category ID. Prior results are discarded. The mapping
// is partial when the scan is cancelled: rules not yet begun are absent.
// ScanAll never fails; failures surface as per-category error notes.
func (s *Session) ScanAll() map[string]*Result {
	s.cancelled.Store(false)
	s.results = make(map[string]*Result, len(s.rules))

	total := len(s.rules)
	for i, r := range s.rules {
		if s.cancelled.Load() {
			break
		}
		s.report(r.Name, i*100/total)

		res := &Result{CategoryID: r.ID, Name: r.Name}
		switch r.Kind {
		case rules.RecycleBin:
			s.scanRecycleBin(res)
		case rules.Developer:
			s.scanDeveloperJunk(res)
		default:
			s.scanGeneric(r, res)
		}
		s.results[r.ID] = res
	}

	// Emitted even after cancellation so progress sinks always settle.
	s.report("scan complete", 100)
	return s.results
}

// Results returns the mapping from the most recent ScanAll run.
func (s *Session) Results() map[string]*Result {
	return s.results
}

// TotalSize sums the sizes of all categories from the last run.
func (s *Session) TotalSize() int64 {
	var total int64
	for _, r := range s.results {
		total += r.TotalSize
	}
	return total
}

// SelectedSize sums the sizes of the given categories. IDs absent from
// the results contribute zero.
func (s *Session) SelectedSize(ids []string) int64 {
	var total int64
	for _, id := range ids {
		if r, ok := s.results[id]; ok {
			total += r.TotalSize
		}
	}
	return total
}

func (s *Session) report(label string, percent int) {
	if s.progress != nil {
		s.progress(label, percent)
	}
}

// scanRecycleBin folds the platform's aggregate recycle-bin statistics
// into the result. A single shell call, so no cancellation checkpoints.
func (s *Session) scanRecycleBin(res *Result) {
	target := ""
	if s.drive != DriveAll {
		target = s.drive + `\`
	}

	size, items, err := s.queryBin(target)
	if err != nil {
		res.Err = err.Error()
		return
	}
	res.TotalSize = size
	res.FileCount = items
}
