//go:build windows

package drives

import "github.com/yusufpapurcu/wmi"

// win32LogicalDisk is the subset of the Win32_LogicalDisk class queried
// for the drives report. DriveType 3 = local fixed disk.
type win32LogicalDisk struct {
	DeviceID   string
	VolumeName string
	FileSystem string
	Size       uint64
	FreeSpace  uint64
}

// List queries WMI for the fixed logical disks with their capacity and
// free space.
func List() ([]Info, error) {
	var disks []win32LogicalDisk
	q := wmi.CreateQuery(&disks, "WHERE DriveType = 3", "Win32_LogicalDisk")
	if err := wmi.Query(q, &disks); err != nil {
		return nil, err
	}

	infos := make([]Info, 0, len(disks))
	for _, d := range disks {
		infos = append(infos, Info{
			Letter:     d.DeviceID,
			Volume:     d.VolumeName,
			FileSystem: d.FileSystem,
			TotalBytes: d.Size,
			FreeBytes:  d.FreeSpace,
		})
	}
	return infos, nil
}
