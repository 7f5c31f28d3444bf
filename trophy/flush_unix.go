//go:build linux || freebsd

package trophy

import (
	"os"

	"golang.org/x/sys/unix"
)

// flushFile pushes written data to stable storage.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees.
func flushFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
