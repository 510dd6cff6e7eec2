//go:build !unix

package runner

import "io"

// Runner is unavailable here: the shell depends on kill(2), wait4(2) and
// SIGALRM.
type Runner struct {
	diag io.Writer
}

func New(opts Options) *Runner {
	return &Runner{diag: opts.withDefaults().Diag}
}

func (r *Runner) Install() error       { return ErrUnsupported }
func (r *Runner) Diag() io.Writer      { return r.diag }
func (r *Runner) ChildAlive() bool     { return false }
func (r *Runner) Launched() int        { return 0 }
func (r *Runner) Run(_ []string) error { return ErrUnsupported }

func (r *Runner) Stop() {}
