package sys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Rlimit is a process resource limit pair. Soft is the cap the kernel
// currently enforces; Hard is the ceiling an unprivileged process may
// raise Soft to. The kernel maintains Soft <= Hard.
type Rlimit struct {
	Soft uint64
	Hard uint64
}

// Getrlimit reads the current limit pair for a resource (one of the
// unix.RLIMIT_* constants).
func Getrlimit(resource int) (Rlimit, error) {
	var rl unix.Rlimit
	if err := unix.Getrlimit(resource, &rl); err != nil {
		return Rlimit{}, fmt.Errorf("rlimit: get resource %d: %w", resource, err)
	}
	return Rlimit{Soft: rl.Cur, Hard: rl.Max}, nil
}

// Setrlimit writes a limit pair for a resource. The kernel rejects
// Soft > Hard and unprivileged hard-limit raises; those failures surface
// here (typically EINVAL or EPERM) rather than being clamped to
// something acceptable.
//
// Getrlimit and Setrlimit are independent syscalls with no locking
// between them: a read-modify-write of a limit can race against other
// threads or processes adjusting the same resource.
func Setrlimit(resource int, rl Rlimit) error {
	u := unix.Rlimit{Cur: rl.Soft, Max: rl.Hard}
	if err := unix.Setrlimit(resource, &u); err != nil {
		return fmt.Errorf("rlimit: set resource %d: %w", resource, err)
	}
	return nil
}
