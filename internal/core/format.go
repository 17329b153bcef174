package core

import "fmt"

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
)

// FormatSize renders a byte count as a human-readable magnitude with
// 1024-based thresholds. KB and MB carry one decimal, GB two.
func FormatSize(size int64) string {
	switch {
	case size < kb:
		return fmt.Sprintf("%d B", size)
	case size < mb:
		return fmt.Sprintf("%.1f KB", float64(size)/kb)
	case size < gb:
		return fmt.Sprintf("%.1f MB", float64(size)/mb)
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/gb)
	}
}
