//go:build unix

package runner

import (
	"errors"

	"golang.org/x/sys/unix"
)

// forward sends sig to the single child pid. The child shares the shell's
// process group, so the group is never signalled. A child that already exited
// (ESRCH) is not an error.
func forward(pid int, sig unix.Signal) error {
	if pid <= 0 {
		return nil
	}
	if err := unix.Kill(pid, sig); err != nil && !errors.Is(err, unix.ESRCH) {
		return err
	}
	return nil
}
