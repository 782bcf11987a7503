package sys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// KtimeNS returns the number of nanoseconds elapsed since boot, not
// counting time the system spent suspended. It reads CLOCK_MONOTONIC,
// the same clock eBPF bpf_ktime_get_ns timestamps are taken from, so
// the result compares directly against in-kernel event timestamps.
//
// The value is monotonic non-decreasing across calls. Its relation to
// wall-clock time is undefined across a suspend/resume cycle; callers
// needing wall time must not derive it from this.
func KtimeNS() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, fmt.Errorf("ktime: clock_gettime: %w", err)
	}

	// The kernel ABI hands back signed seconds and nanoseconds. A
	// monotonic clock can't legitimately produce negative components,
	// so reject them instead of letting the unsigned conversion wrap.
	if ts.Sec < 0 || ts.Nsec < 0 {
		return 0, fmt.Errorf("ktime: clock_gettime returned negative timespec %d.%09d", ts.Sec, ts.Nsec)
	}

	return uint64(ts.Sec)*1_000_000_000 + uint64(ts.Nsec), nil
}
