//go:build unix

package runner

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// session is the state shared between the control goroutine and the signal
// handlers. Each field is a single atomic word.
type session struct {
	childPid   atomic.Int64
	childAlive atomic.Bool
	timedOut   atomic.Bool
}

// launched records a started child. The pid is published before the alive
// flag so a handler that sees alive also sees the right pid.
func (s *session) launched(pid int) {
	s.childPid.Store(int64(pid))
	s.childAlive.Store(true)
}

func (s *session) reaped() {
	s.childAlive.Store(false)
	s.childPid.Store(0)
}

func (s *session) child() (int, bool) {
	if !s.childAlive.Load() {
		return 0, false
	}
	pid := int(s.childPid.Load())
	return pid, pid > 0
}

// Controller turns SIGINT and SIGALRM into actions on the running child.
//
// Signals arrive on a channel and are handled by one goroutine. Handlers only
// read and write the session flags, query the alarm, call kill(2), and write a
// single newline.
type Controller struct {
	sess  *session
	alarm alarm
	diag  io.Writer
	log   zerolog.Logger

	mu      sync.Mutex
	sigs    chan os.Signal
	syncReq chan chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

func newController(sess *session, a alarm, diag io.Writer, log zerolog.Logger) *Controller {
	return &Controller{sess: sess, alarm: a, diag: diag, log: log}
}

// Install registers the handlers. It must succeed before the command loop
// starts.
func (c *Controller) Install() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sigs != nil {
		return ErrAlreadyInstalled
	}
	c.sigs = make(chan os.Signal, 4)
	c.syncReq = make(chan chan struct{})
	c.done = make(chan struct{})
	signal.Notify(c.sigs, trapSignals()...)

	c.wg.Add(1)
	go c.loop(c.sigs, c.syncReq, c.done)
	c.log.Debug().Msg("signal handlers installed")
	return nil
}

// Stop restores default signal behaviour and waits for the handler goroutine.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sigs == nil {
		return
	}
	signal.Stop(c.sigs)
	close(c.done)
	c.wg.Wait()
	c.sigs, c.syncReq, c.done = nil, nil, nil
}

// Sync returns once the signals already sitting in the channel have been
// handled. Signals the runtime has not relayed yet are not covered; onAlarm
// drops those itself by checking the alarm.
func (c *Controller) Sync() {
	c.mu.Lock()
	req, done := c.syncReq, c.done
	c.mu.Unlock()
	if req == nil {
		return
	}
	ack := make(chan struct{})
	select {
	case req <- ack:
		<-ack
	case <-done:
	}
}

func (c *Controller) loop(sigs <-chan os.Signal, syncReq <-chan chan struct{}, done <-chan struct{}) {
	defer c.wg.Done()
	for {
		select {
		case sig := <-sigs:
			c.handle(sig)
		case ack := <-syncReq:
			c.drain(sigs)
			close(ack)
		case <-done:
			return
		}
	}
}

func (c *Controller) drain(sigs <-chan os.Signal) {
	for {
		select {
		case sig := <-sigs:
			c.handle(sig)
		default:
			return
		}
	}
}

func (c *Controller) handle(sig os.Signal) {
	switch sig {
	case unix.SIGINT:
		c.onInterrupt()
	case unix.SIGALRM:
		c.onAlarm()
	}
}

// onInterrupt forwards SIGINT to the child, or moves an idle prompt to a
// fresh line.
func (c *Controller) onInterrupt() {
	pid, ok := c.sess.child()
	if !ok {
		_, _ = io.WriteString(c.diag, "\n")
		return
	}
	if err := forward(pid, unix.SIGINT); err != nil {
		c.log.Warn().Err(err).Int("pid", pid).Msg("forward SIGINT")
		return
	}
	c.log.Debug().Int("pid", pid).Msg("interrupt forwarded")
}

// onAlarm marks the command as timed out and kills the child outright. A
// SIGALRM that does not match a current, expired arming is ignored: it was
// raised by someone else, or relayed after the timer was disarmed.
func (c *Controller) onAlarm() {
	if !c.alarm.expired() {
		c.log.Debug().Msg("stale SIGALRM ignored")
		return
	}
	c.sess.timedOut.Store(true)
	pid, ok := c.sess.child()
	if !ok {
		return
	}
	if err := forward(pid, unix.SIGKILL); err != nil {
		c.log.Warn().Err(err).Int("pid", pid).Msg("kill timed-out child")
		return
	}
	c.log.Debug().Int("pid", pid).Msg("timed-out child killed")
}
