package rules

import (
	"os"
	"path/filepath"
)

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// localAppData returns the local app data directory.
func localAppData() string {
	if l := os.Getenv("LOCALAPPDATA"); l != "" {
		return l
	}
	return filepath.Join(userProfile(), "AppData", "Local")
}

// userProfile returns the user profile directory.
func userProfile() string {
	if u := os.Getenv("USERPROFILE"); u != "" {
		return u
	}
	return `C:\Users\Default`
}

// systemDrive returns the system drive letter with backslash (e.g., C:\).
func systemDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return d + `\`
	}
	return `C:\`
}

// Defaults returns the built-in cleanup rule table. Paths under the
// Windows directory are drive-anchored, so multi-drive scans rewrite
// them for each fixed drive.
func Defaults() []Rule {
	w := winDir()
	local := localAppData()

	return []Rule{
		{
			ID:   "user_temp",
			Name: "User temporary files",
			Kind: Generic,
			Paths: []string{
				os.Getenv("TEMP"),
				filepath.Join(local, "Temp"),
			},
		},
		{
			ID:    "system_temp",
			Name:  "System temporary files",
			Kind:  Generic,
			Paths: []string{filepath.Join(w, "Temp")},
		},
		{
			ID:         "prefetch",
			Name:       "Prefetch files",
			Kind:       Generic,
			Paths:      []string{filepath.Join(w, "Prefetch")},
			Extensions: []string{".pf"},
		},
		{
			ID:    "update_cache",
			Name:  "Windows Update cache",
			Kind:  Generic,
			Paths: []string{filepath.Join(w, "SoftwareDistribution", "Download")},
		},
		{
			ID:         "system_logs",
			Name:       "System log files",
			Kind:       Generic,
			Paths:      []string{filepath.Join(w, "Logs")},
			Extensions: []string{".log", ".etl"},
		},
		{
			ID:      "crash_dumps",
			Name:    "Crash dumps",
			Kind:    Generic,
			Paths:   []string{filepath.Join(local, "CrashDumps"), filepath.Join(w, "Minidump")},
			Pattern: "dmp",
		},
		{
			ID:    "thumbnail_cache",
			Name:  "Thumbnail cache",
			Kind:  Generic,
			Paths: []string{filepath.Join(local, "Microsoft", "Windows", "Explorer")},
			// thumbcache_*.db plus the older iconcache files
			Extensions: []string{".db"},
			Pattern:    "cache",
		},
		{
			ID:    "delivery_optimization",
			Name:  "Delivery Optimization cache",
			Kind:  Generic,
			Paths: []string{filepath.Join(w, "SoftwareDistribution", "DeliveryOptimization")},
		},
		{
			ID:    "windows_old",
			Name:  "Previous Windows installation",
			Kind:  Generic,
			Paths: []string{filepath.Join(systemDrive(), "Windows.old")},
		},
		{
			ID:   "recycle_bin",
			Name: "Recycle Bin",
			Kind: RecycleBin,
		},
		{
			ID:   "developer_junk",
			Name: "Stale developer build artifacts",
			Kind: Developer,
		},
	}
}
