//go:build windows

package trophy

import (
	"os"

	"golang.org/x/sys/windows"
)

// flushFile pushes written data to stable storage using FlushFileBuffers.
func flushFile(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
