//go:build darwin

package trophy

import (
	"os"

	"golang.org/x/sys/unix"
)

// flushFile pushes written data to stable storage.
//
// macOS has no fdatasync. F_FULLFSYNC reaches the physical disk; some
// filesystems reject it, in which case plain fsync is used.
func flushFile(f *os.File) error {
	if _, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0); err == nil {
		return nil
	}
	return unix.Fsync(int(f.Fd()))
}
