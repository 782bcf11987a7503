// Package hostpaths resolves the root directories for kernel-exported
// filesystems. On a bare host the defaults apply; inside a container the
// HOST_PROC, HOST_SYS, and HOST_ETC variables point at the host mounts
// (for example /host/proc) so probes read the host's state rather than
// the container's.
package hostpaths

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Paths holds the resolved root of each kernel-exported filesystem.
type Paths struct {
	ProcRoot string `envconfig:"HOST_PROC" default:"/proc"`
	SysRoot  string `envconfig:"HOST_SYS" default:"/sys"`
	EtcRoot  string `envconfig:"HOST_ETC" default:"/etc"`
}

// Load resolves the paths from environment variables.
func Load() (*Paths, error) {
	var p Paths
	if err := envconfig.Process("", &p); err != nil {
		return nil, fmt.Errorf("hostpaths: %w", err)
	}
	return &p, nil
}

// Default returns the paths for a bare host.
func Default() *Paths {
	return &Paths{
		ProcRoot: "/proc",
		SysRoot:  "/sys",
		EtcRoot:  "/etc",
	}
}

// Proc joins elem onto the procfs root.
func (p *Paths) Proc(elem ...string) string {
	return filepath.Join(append([]string{p.ProcRoot}, elem...)...)
}

// Sys joins elem onto the sysfs root.
func (p *Paths) Sys(elem ...string) string {
	return filepath.Join(append([]string{p.SysRoot}, elem...)...)
}

// Etc joins elem onto the etc root.
func (p *Paths) Etc(elem ...string) string {
	return filepath.Join(append([]string{p.EtcRoot}, elem...)...)
}
