//go:build unix

package runner

import (
	"os"
)

// procAttr hands the child the shell's stdio and environment. No SysProcAttr:
// the child stays in the shell's process group and session.
func procAttr(stdin, stdout, stderr *os.File) *os.ProcAttr {
	return &os.ProcAttr{
		Env:   os.Environ(),
		Files: []*os.File{stdin, stdout, stderr},
	}
}
