package sys

import (
	"fmt"

	"github.com/tklauser/go-sysconf"
)

// ClockTick returns the number of clock ticks per second (USER_HZ), the
// unit the kernel reports CPU times in under /proc/[pid]/stat.
func ClockTick() (int64, error) {
	v, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, fmt.Errorf("sysconf: SC_CLK_TCK: %w", err)
	}
	return v, nil
}

// PageSize returns the size of a memory page in bytes.
func PageSize() (int64, error) {
	v, err := sysconf.Sysconf(sysconf.SC_PAGESIZE)
	if err != nil {
		return 0, fmt.Errorf("sysconf: SC_PAGESIZE: %w", err)
	}
	return v, nil
}

// PageShift returns the smallest shift such that 1<<shift covers the
// system page size. Page sizes on Linux are powers of two, so in
// practice 1<<PageShift() == PageSize(). A PageSize failure is returned
// unchanged.
func PageShift() (uint64, error) {
	size, err := PageSize()
	if err != nil {
		return 0, err
	}
	if size <= 0 {
		return 0, fmt.Errorf("sysconf: page size %d out of range", size)
	}

	var shift uint64
	for int64(1)<<shift < size {
		shift++
	}
	return shift, nil
}
