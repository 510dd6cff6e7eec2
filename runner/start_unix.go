//go:build unix

package runner

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ExecError is a failure to replace the child's image with the requested
// program. The child never ran; the shell carries on with the next command.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string { return "execve: " + e.Path + ": " + e.Err.Error() }
func (e *ExecError) Unwrap() error { return e.Err }

// start forks and execs argv. It returns the child's pid; the caller must reap
// it with wait4.
//
// Failures to create the process at all (EAGAIN, ENOMEM) wrap ErrSpawn. Every
// other failure comes from execve in the child and is returned as *ExecError.
func start(argv []string, attr *os.ProcAttr) (int, error) {
	p, err := os.StartProcess(argv[0], argv, attr)
	if err != nil {
		if isSpawnError(err) {
			return 0, fmt.Errorf("%w: fork: %w", ErrSpawn, err)
		}
		cause := err
		var pe *os.PathError
		if errors.As(err, &pe) {
			cause = pe.Err
		}
		return 0, &ExecError{Path: argv[0], Err: cause}
	}
	pid := p.Pid
	// Reaping happens through wait4 on the pid; drop the handle (and any pidfd
	// it holds) right away.
	_ = p.Release()
	return pid, nil
}

// isSpawnError reports a failure to create the child. os.StartProcess tags
// fork and execve failures alike as "fork/exec", so an ENOMEM from execve is
// also classed as fatal here.
func isSpawnError(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.ENOMEM)
}
