//go:build unix && !linux

package runner

import (
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"
)

// timerAlarm raises SIGALRM at the shell itself when a runtime timer fires, so
// expiry takes the same path through the Controller as on Linux.
//
// Each arming gets a generation number. A timer only records expiry for its
// own generation, and disarm moves the generation on.
type timerAlarm struct {
	t     *time.Timer
	gen   atomic.Uint64
	fired atomic.Uint64
}

func newAlarm() alarm { return &timerAlarm{} }

func (a *timerAlarm) arm(d time.Duration) error {
	a.disarm()
	g := a.gen.Add(1)
	a.t = time.AfterFunc(d, func() {
		if a.gen.Load() != g {
			return
		}
		a.fired.Store(g)
		_ = unix.Kill(unix.Getpid(), unix.SIGALRM)
	})
	return nil
}

func (a *timerAlarm) disarm() {
	a.gen.Add(1)
	if a.t != nil {
		a.t.Stop()
		a.t = nil
	}
}

func (a *timerAlarm) expired() bool {
	f := a.fired.Load()
	return f != 0 && f == a.gen.Load()
}
