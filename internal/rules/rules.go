package rules

// Kind selects the scan strategy that handles a rule.
type Kind int

const (
	// Generic walks the rule's path templates with the extension and
	// pattern filters applied.
	Generic Kind = iota

	// RecycleBin queries the shell's aggregate recycle-bin statistics
	// instead of walking the filesystem.
	RecycleBin

	// Developer runs the bounded-depth search for stale build-artifact
	// directories.
	Developer
)

func (k Kind) String() string {
	switch k {
	case RecycleBin:
		return "recycle-bin"
	case Developer:
		return "developer"
	default:
		return "generic"
	}
}

// Rule describes one cleanup category. The rule list is immutable input:
// the scan engine never modifies it.
//
// Paths, Extensions, and Pattern only apply to Generic rules; the other
// two kinds carry no configuration beyond their identity.
type Rule struct {
	// ID is the stable key results are stored under.
	ID string

	// Name is the human-readable label, also used in progress reporting.
	Name string

	Kind Kind

	// Paths is the list of path templates to scan. A template beginning
	// with a drive-letter-and-colon prefix is rewritten when scanning a
	// non-default drive or all drives.
	Paths []string

	// Extensions, when non-empty, restricts matches to files whose
	// extension appears in the list (case-insensitive, leading dot).
	Extensions []string

	// Pattern, when non-empty, restricts matches to paths containing it
	// as a case-insensitive substring.
	Pattern string
}
