//go:build !linux && !freebsd && !darwin && !windows

package trophy

import "os"

func flushFile(f *os.File) error {
	return f.Sync()
}
