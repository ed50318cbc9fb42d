// Advisory read locking.
//
// Open holds a shared lock on the GEDCOM file for as long as it is being
// parsed. A program that rewrites the file in place and takes an exclusive
// lock first (flock(2) on Unix, LockFileEx on Windows) is never observed
// half written; uncooperative writers are not excluded.
package gedcom

import (
	"fmt"
	"os"
)

// readLocked runs read while a shared lock is held on f.
func readLocked(f *os.File, read func() error) error {
	if err := lockShared(f); err != nil {
		return fmt.Errorf("lock %s: %w", f.Name(), err)
	}
	defer unlockFile(f)
	return read()
}
