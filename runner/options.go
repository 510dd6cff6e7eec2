// Package runner runs one foreground child at a time on behalf of the shell.
//
// A Runner owns the session state shared with its signal Controller: the pid
// of the running child, whether that child is alive, and whether the command
// timer fired. Only the Controller's handlers and the two reset points in
// Runner.Run touch that state.
package runner

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrSpawn            = errors.New("process creation failed")
	ErrEmptyCommand     = errors.New("empty command")
	ErrAlreadyInstalled = errors.New("signal handlers already installed")
	ErrUnsupported      = errors.New("platform not supported")
)

// Options configures a Runner. Nil files default to the process's own stdio.
type Options struct {
	// Timeout kills a child that runs longer than this. Zero disables it.
	Timeout time.Duration
	// Notice is written to Stdout when a child is killed by the timeout.
	Notice string

	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
	// Diag receives the shell's own diagnostics. Defaults to Stderr.
	Diag io.Writer

	Logger zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Diag == nil {
		o.Diag = o.Stderr
	}
	return o
}

// syncWriter serializes writes from the control goroutine and the signal
// handler goroutine.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
