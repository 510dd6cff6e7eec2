//go:build unix

package runner

import (
	"os"
	"syscall"
)

// trapSignals lists the signals the Controller handles: the user interrupt and
// the command timer.
func trapSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGALRM}
}
