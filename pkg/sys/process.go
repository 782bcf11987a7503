package sys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Kill delivers sig to the process with the given pid. Success is
// silent; failure carries the OS error (ESRCH for a missing process,
// EPERM for one we may not signal). A sig of 0 performs the usual
// existence-and-permission probe without delivering anything.
func Kill(pid int, sig unix.Signal) error {
	if err := unix.Kill(pid, sig); err != nil {
		return fmt.Errorf("kill: pid %d: %w", pid, err)
	}
	return nil
}

// CurrentUID returns the real user id of the calling process.
func CurrentUID() int {
	return unix.Getuid()
}
