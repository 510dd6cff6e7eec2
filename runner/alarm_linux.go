//go:build linux

package runner

import (
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
)

// itimerAlarm is the process-wide ITIMER_REAL timer; expiry raises SIGALRM.
type itimerAlarm struct {
	armed atomic.Bool
}

func newAlarm() alarm { return &itimerAlarm{} }

func (a *itimerAlarm) arm(d time.Duration) error {
	a.armed.Store(true)
	_, err := unix.Setitimer(unix.ItimerReal, unix.Itimerval{
		Value: unix.NsecToTimeval(d.Nanoseconds()),
	})
	if err != nil {
		a.armed.Store(false)
	}
	return err
}

func (a *itimerAlarm) disarm() {
	a.armed.Store(false)
	_, _ = unix.Setitimer(unix.ItimerReal, unix.Itimerval{})
}

// expired is true while armed and after the kernel timer has run down to zero.
// A SIGALRM seen while time is still left on the timer came from elsewhere.
func (a *itimerAlarm) expired() bool {
	if !a.armed.Load() {
		return false
	}
	cur, err := unix.Getitimer(unix.ItimerReal)
	if err != nil {
		return false
	}
	return cur.Value.Sec == 0 && cur.Value.Usec == 0
}
