package drives

import (
	"os"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// Info describes one fixed drive's identity and capacity.
type Info struct {
	Letter     string
	Volume     string
	FileSystem string
	TotalBytes uint64
	FreeBytes  uint64
}

// Fixed returns the mounted fixed-drive letters ("C:", "D:", ...) in
// sorted order. Enumeration failure degrades to the system drive alone
// rather than propagating an error.
func Fixed() []string {
	parts, err := disk.Partitions(false)
	if err != nil {
		return []string{systemDrive()}
	}
	letters := fixedFrom(parts)
	if len(letters) == 0 {
		return []string{systemDrive()}
	}
	return letters
}

// fixedFrom extracts sorted, deduplicated drive letters from a partition
// listing, keeping only entries that look like fixed drives: a reported
// filesystem type, or an explicit "fixed" mount option.
func fixedFrom(parts []disk.PartitionStat) []string {
	seen := make(map[string]bool, len(parts))
	var letters []string
	for _, p := range parts {
		if !isFixed(p) {
			continue
		}
		letter := driveLetter(p.Mountpoint)
		if letter == "" {
			letter = driveLetter(p.Device)
		}
		if letter == "" || seen[letter] {
			continue
		}
		seen[letter] = true
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return letters
}

func isFixed(p disk.PartitionStat) bool {
	if p.Fstype != "" {
		return true
	}
	for _, o := range p.Opts {
		if strings.EqualFold(o, "fixed") {
			return true
		}
	}
	return false
}

// driveLetter normalizes a mount point like `c:\` to "C:". Non-drive
// mount points (anything but letter-colon) yield "".
func driveLetter(mount string) string {
	m := strings.TrimRight(mount, `\/`)
	if len(m) != 2 || m[1] != ':' {
		return ""
	}
	c := m[0]
	if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
		return ""
	}
	return strings.ToUpper(m)
}

// systemDrive returns the system drive letter (e.g., "C:").
func systemDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return strings.ToUpper(strings.TrimRight(d, `\`))
	}
	return "C:"
}
