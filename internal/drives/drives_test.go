package drives

import (
	"reflect"
	"testing"

	"github.com/shirou/gopsutil/v4/disk"
)

func TestDriveLetter(t *testing.T) {
	tests := []struct {
		mount string
		want  string
	}{
		{`C:`, "C:"},
		{`c:\`, "C:"},
		{`D:\`, "D:"},
		{`/`, ""},
		{`/mnt/data`, ""},
		{`\\server\share`, ""},
		{``, ""},
		{`1:`, ""},
	}
	for _, tt := range tests {
		if got := driveLetter(tt.mount); got != tt.want {
			t.Errorf("driveLetter(%q) = %q, want %q", tt.mount, got, tt.want)
		}
	}
}

func TestFixedFrom(t *testing.T) {
	parts := []disk.PartitionStat{
		{Device: "D:", Mountpoint: `D:\`, Fstype: "NTFS"},
		{Device: "C:", Mountpoint: `C:\`, Fstype: "NTFS"},
		{Device: "C:", Mountpoint: `C:\`, Fstype: "NTFS"}, // duplicate
		{Device: "E:", Mountpoint: `E:\`, Opts: []string{"rw", "fixed"}},
		{Device: "F:", Mountpoint: `F:\`}, // no fstype, not fixed
		{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
	}

	got := fixedFrom(parts)
	want := []string{"C:", "D:", "E:"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fixedFrom = %v, want %v", got, want)
	}
}

func TestFixedFrom_Empty(t *testing.T) {
	if got := fixedFrom(nil); len(got) != 0 {
		t.Errorf("fixedFrom(nil) = %v, want empty", got)
	}
}

func TestSystemDrive(t *testing.T) {
	t.Setenv("SYSTEMDRIVE", `d:`)
	if got := systemDrive(); got != "D:" {
		t.Errorf("systemDrive = %q, want D:", got)
	}

	t.Setenv("SYSTEMDRIVE", "")
	if got := systemDrive(); got != "C:" {
		t.Errorf("systemDrive fallback = %q, want C:", got)
	}
}
