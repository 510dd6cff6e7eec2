//go:build unix

package runner

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Status is a child's termination status as reported by wait4. The zero value
// means no status was collected.
type Status struct {
	ws    unix.WaitStatus
	valid bool
}

func (s Status) Valid() bool    { return s.valid }
func (s Status) Exited() bool   { return s.valid && s.ws.Exited() }
func (s Status) Signaled() bool { return s.valid && s.ws.Signaled() }

// ExitCode returns the exit code, or -1 if the child did not exit normally.
func (s Status) ExitCode() int {
	if !s.Exited() {
		return -1
	}
	return s.ws.ExitStatus()
}

// Signal returns the terminating signal, or 0 if the child was not killed by one.
func (s Status) Signal() unix.Signal {
	if !s.Signaled() {
		return 0
	}
	return s.ws.Signal()
}

// SignaledBy reports whether sig terminated the child.
func (s Status) SignaledBy(sig unix.Signal) bool {
	return s.Signaled() && s.ws.Signal() == sig
}

func (s Status) String() string {
	switch {
	case s.Exited():
		return fmt.Sprintf("exit status %d", s.ExitCode())
	case s.Signaled():
		return "signal: " + unix.SignalName(s.Signal())
	case !s.valid:
		return "unknown"
	default:
		return fmt.Sprintf("status %#x", uint32(s.ws))
	}
}

// timedOut decides whether the timeout notice is due: either the timer handler
// saw the expiry, or the child died of SIGALRM before the handler got to it.
func timedOut(flag bool, st Status) bool {
	return flag || st.SignaledBy(unix.SIGALRM)
}
