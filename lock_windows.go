//go:build windows

package gedcom

import (
	"os"

	"golang.org/x/sys/windows"
)

// The locked range is 0 to max, which covers the whole file.
const lockAll = ^uint32(0)

func lockShared(f *os.File) error {
	var ol windows.Overlapped
	return windows.LockFileEx(windows.Handle(f.Fd()), 0, 0, lockAll, lockAll, &ol)
}

func unlockFile(f *os.File) error {
	var ol windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, lockAll, lockAll, &ol)
}
