package scan

// Result accumulates one category's scan outcome. TotalSize and
// FileCount only ever grow during a scan pass, and MatchedPaths is
// append-only.
type Result struct {
	// CategoryID is the rule's stable key.
	CategoryID string

	// Name is the rule's display name.
	Name string

	// TotalSize is the accumulated byte size of all matches.
	TotalSize int64

	// FileCount is the number of matched units. For generic rules this
	// counts files, for the developer scan matched directories, and for
	// the recycle bin the shell-reported item count.
	FileCount int64

	// MatchedPaths lists the absolute paths contributing to TotalSize.
	// The recycle-bin probe reports aggregates only and leaves it empty.
	MatchedPaths []string

	// Err holds a human-readable failure note. A category keeps scanning
	// after a failure, and when several path templates fail the most
	// recent message replaces the earlier one.
	Err string
}
