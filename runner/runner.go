//go:build unix

package runner

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// alarm is the one-shot command timer. Expiry raises SIGALRM at the shell.
type alarm interface {
	arm(d time.Duration) error
	disarm()
	// expired reports whether the current arming has run out. It is false
	// once disarmed, so a SIGALRM relayed late is recognised as stale.
	expired() bool
}

// Runner launches and reaps one foreground child at a time.
type Runner struct {
	opts  Options
	sess  session
	ctl   *Controller
	alarm alarm
	diag  io.Writer
	log   zerolog.Logger

	launched int
}

func New(opts Options) *Runner {
	opts = opts.withDefaults()
	r := &Runner{
		opts:  opts,
		alarm: newAlarm(),
		diag:  &syncWriter{w: opts.Diag},
		log:   opts.Logger,
	}
	r.ctl = newController(&r.sess, r.alarm, r.diag, opts.Logger.With().Str("component", "signals").Logger())
	return r
}

// Install registers the SIGINT and SIGALRM handlers.
func (r *Runner) Install() error {
	if err := r.ctl.Install(); err != nil {
		return fmt.Errorf("install signal handlers: %w", err)
	}
	return nil
}

// Stop disarms any pending timer and removes the signal handlers.
func (r *Runner) Stop() {
	r.alarm.disarm()
	r.ctl.Stop()
}

// Diag is the diagnostic writer shared with the signal handlers. Callers that
// write prompts must use it so their output does not interleave with a
// handler's newline.
func (r *Runner) Diag() io.Writer { return r.diag }

// ChildAlive reports whether a child is between launch and reap.
func (r *Runner) ChildAlive() bool { return r.sess.childAlive.Load() }

// Launched counts the children started so far.
func (r *Runner) Launched() int { return r.launched }

// Run executes argv as the sole foreground child and waits for it.
//
// Only process-creation failure is returned (wrapping ErrSpawn); the shell
// cannot keep its invariants without a child pid. A program that cannot be
// executed, or a failed wait, is reported on the diagnostic stream and Run
// returns nil.
func (r *Runner) Run(argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	r.sess.timedOut.Store(false)

	pid, err := start(argv, procAttr(r.opts.Stdin, r.opts.Stdout, r.opts.Stderr))
	if err != nil {
		if errors.Is(err, ErrSpawn) {
			return err
		}
		fmt.Fprintln(r.diag, err)
		r.log.Debug().Err(err).Strs("argv", argv).Msg("exec failed")
		return nil
	}
	r.launched++
	r.sess.launched(pid)
	r.log.Debug().Int("pid", pid).Strs("argv", argv).Msg("child started")

	if r.opts.Timeout > 0 {
		if err := r.alarm.arm(r.opts.Timeout); err != nil {
			fmt.Fprintf(r.diag, "setitimer: %v\n", err)
		}
	}

	st, err := reap(pid)
	if err != nil {
		fmt.Fprintln(r.diag, err)
	}

	r.sess.reaped()
	r.alarm.disarm()
	r.ctl.Sync()

	notice := timedOut(r.sess.timedOut.Load(), st)
	r.log.Debug().Int("pid", pid).Stringer("status", st).Bool("timed_out", notice).Msg("child reaped")
	if notice {
		if _, err := io.WriteString(r.opts.Stdout, r.opts.Notice); err != nil {
			r.log.Warn().Err(err).Msg("write timeout notice")
		}
	}
	return nil
}
