//go:build unix

package runner

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// reap blocks until the child pid terminates, by exit or by signal. An
// interrupted wait is retried; any other failure returns a zero Status.
func reap(pid int) (Status, error) {
	var ws unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &ws, 0, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return Status{}, fmt.Errorf("waitpid %d: %w", pid, err)
		}
		return Status{ws: ws, valid: true}, nil
	}
}
