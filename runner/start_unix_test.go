//go:build unix

package runner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func TestIsSpawnError(t *testing.T) {
	cases := []struct {
		errno unix.Errno
		want  bool
	}{
		{unix.EAGAIN, true},
		{unix.ENOMEM, true},
		{unix.ENOENT, false},
		{unix.EACCES, false},
		{unix.ENOEXEC, false},
	}
	for _, tc := range cases {
		err := &os.PathError{Op: "fork/exec", Path: "/bin/x", Err: tc.errno}
		if got := isSpawnError(err); got != tc.want {
			t.Fatalf("isSpawnError(%v) = %v, want %v", tc.errno, got, tc.want)
		}
	}
}

func TestStartNotExecutableIsExecError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(p, []byte("not a program\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := start([]string{p}, procAttr(os.Stdin, os.Stdout, os.Stderr))
	var ee *ExecError
	if !errors.As(err, &ee) {
		t.Fatalf("start err = %v, want *ExecError", err)
	}
	if errors.Is(err, ErrSpawn) {
		t.Fatalf("start err = %v, exec failure classed as spawn failure", err)
	}
	if !errors.Is(err, unix.EACCES) {
		t.Fatalf("start err = %v, want EACCES", err)
	}
	requireNoChildren(t)
}
