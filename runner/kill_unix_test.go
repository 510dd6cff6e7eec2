//go:build unix

package runner

import (
	"os"
	"os/exec"
	"testing"

	"golang.org/x/sys/unix"
)

func startForTest(t *testing.T, name string, args ...string) int {
	t.Helper()
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
	devnull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("open devnull: %v", err)
	}
	t.Cleanup(func() { _ = devnull.Close() })

	pid, err := start(append([]string{path}, args...), procAttr(devnull, devnull, devnull))
	if err != nil {
		t.Fatalf("start %s: %v", name, err)
	}
	return pid
}

// TestForwardKillsChild starts a long-running child, forwards SIGKILL to it and
// checks that the reaper sees the signal.
func TestForwardKillsChild(t *testing.T) {
	pid := startForTest(t, "sleep", "60")

	if err := forward(pid, unix.SIGKILL); err != nil {
		t.Fatalf("forward: %v", err)
	}
	st, err := reap(pid)
	if err != nil {
		t.Fatalf("reap: %v", err)
	}
	if !st.SignaledBy(unix.SIGKILL) {
		t.Fatalf("status = %s, want killed by SIGKILL", st)
	}
}

func TestForwardToReapedChildIsNoop(t *testing.T) {
	pid := startForTest(t, "true")
	st, err := reap(pid)
	if err != nil {
		t.Fatalf("reap: %v", err)
	}
	if st.ExitCode() != 0 {
		t.Fatalf("status = %s, want exit status 0", st)
	}
	if err := forward(pid, unix.SIGINT); err != nil {
		t.Fatalf("forward to reaped pid: %v", err)
	}
	if err := forward(0, unix.SIGKILL); err != nil {
		t.Fatalf("forward to pid 0: %v", err)
	}
}

func TestReapReportsExitCode(t *testing.T) {
	pid := startForTest(t, "sh", "-c", "exit 7")
	st, err := reap(pid)
	if err != nil {
		t.Fatalf("reap: %v", err)
	}
	if !st.Exited() || st.ExitCode() != 7 {
		t.Fatalf("status = %s, want exit status 7", st)
	}
}

func TestReapUnknownPid(t *testing.T) {
	st, err := reap(unix.Getpid())
	if err == nil {
		t.Fatalf("reap(self) succeeded, want ECHILD")
	}
	if st.Valid() {
		t.Fatalf("failed reap returned a valid status %s", st)
	}
}
