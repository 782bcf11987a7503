package sys

import (
	"fmt"
	"os"
	"strings"
)

// securityfs exposes the active security modules as a single
// comma-separated line. Swapped out only by tests.
var lsmListPath = "/sys/kernel/security/lsm"

// ActiveLSMs returns the Linux security modules active on this kernel,
// in the order the kernel initialized them (e.g. lockdown, yama,
// apparmor, bpf). An unreadable listing is a normal condition — the
// kernel may predate the file or securityfs may not be mounted — and
// comes back as an error for the caller to treat as "unknown", not as
// something fatal.
func ActiveLSMs() ([]string, error) {
	data, err := os.ReadFile(lsmListPath)
	if err != nil {
		return nil, fmt.Errorf("lsm: %w", err)
	}

	var mods []string
	for _, m := range strings.Split(strings.TrimSpace(string(data)), ",") {
		if m != "" {
			mods = append(mods, m)
		}
	}
	return mods, nil
}

// LSMEnabled reports whether the named security module is active.
func LSMEnabled(name string) (bool, error) {
	mods, err := ActiveLSMs()
	if err != nil {
		return false, err
	}
	for _, m := range mods {
		if m == name {
			return true, nil
		}
	}
	return false, nil
}

// BPFLSMEnabled reports whether the BPF LSM is active, which decides
// whether LSM-attached BPF programs can load at all.
func BPFLSMEnabled() (bool, error) {
	return LSMEnabled("bpf")
}
