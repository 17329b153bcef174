//go:build windows

package recycle

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modShell32          = windows.NewLazySystemDLL("shell32.dll")
	procQueryRecycleBin = modShell32.NewProc("SHQueryRecycleBinW")
)

// shQueryRBInfo mirrors the Windows SHQUERYRBINFO struct.
// Go's natural alignment adds padding after cbSize on AMD64,
// matching the C struct layout on both 32-bit and 64-bit.
type shQueryRBInfo struct {
	cbSize      uint32
	i64Size     int64
	i64NumItems int64
}

// Query returns the aggregate size and item count of the Recycle Bin via
// the SHQueryRecycleBinW Shell API, without enumerating individual
// items. target is a drive root like `C:\`, or empty to query all
// drives at once.
func Query(target string) (size, items int64, err error) {
	var root uintptr
	if target != "" {
		p, perr := windows.UTF16PtrFromString(target)
		if perr != nil {
			return 0, 0, perr
		}
		root = uintptr(unsafe.Pointer(p))
	}

	var info shQueryRBInfo
	info.cbSize = uint32(unsafe.Sizeof(info))

	ret, _, _ := procQueryRecycleBin.Call(
		root, // NULL = query all drives
		uintptr(unsafe.Pointer(&info)),
	)
	if ret != 0 {
		return 0, 0, fmt.Errorf("SHQueryRecycleBinW failed: HRESULT 0x%08x", uint32(ret))
	}

	return info.i64Size, info.i64NumItems, nil
}
