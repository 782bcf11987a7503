package sys

import (
	"errors"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestKill(t *testing.T) {
	t.Run("signal zero probes an existing process", func(t *testing.T) {
		if err := Kill(os.Getpid(), 0); err != nil {
			t.Fatalf("Kill(self, 0) error: %v", err)
		}
	})

	t.Run("missing pid surfaces ESRCH", func(t *testing.T) {
		// PID max on Linux is at most 2^22; this one cannot exist.
		err := Kill(1 << 30, 0)
		if err == nil {
			t.Fatal("Kill(1<<30, 0) = nil, want error")
		}
		if !errors.Is(err, unix.ESRCH) {
			t.Fatalf("Kill(1<<30, 0) = %v, want ESRCH", err)
		}
	})
}

func TestCurrentUID(t *testing.T) {
	if got, want := CurrentUID(), os.Getuid(); got != want {
		t.Fatalf("CurrentUID() = %d, os.Getuid() = %d", got, want)
	}
}
