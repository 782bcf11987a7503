package hostinfo

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/Real-Fruit-Snacks/Bedrock/pkg/hostpaths"
)

// NamespaceKind names one of the kernel namespace types exposed under
// /proc/[pid]/ns.
type NamespaceKind string

const (
	CgroupNS NamespaceKind = "cgroup"
	IPCNS    NamespaceKind = "ipc"
	MountNS  NamespaceKind = "mnt"
	NetNS    NamespaceKind = "net"
	PIDNS    NamespaceKind = "pid"
	TimeNS   NamespaceKind = "time"
	UserNS   NamespaceKind = "user"
	UTSNS    NamespaceKind = "uts"
)

var validNamespaceKinds = map[NamespaceKind]bool{
	CgroupNS: true,
	IPCNS:    true,
	MountNS:  true,
	NetNS:    true,
	PIDNS:    true,
	TimeNS:   true,
	UserNS:   true,
	UTSNS:    true,
}

// NamespaceInode returns the inode identifying the namespace of the
// given kind that pid belongs to. Two processes share a namespace if
// and only if the inodes match.
func NamespaceInode(paths *hostpaths.Paths, pid int, kind NamespaceKind) (uint64, error) {
	if !validNamespaceKinds[kind] {
		return 0, fmt.Errorf("namespace: unknown kind %q", string(kind))
	}

	path := paths.Proc(strconv.Itoa(pid), "ns", string(kind))
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return 0, fmt.Errorf("namespace: stat %s: %w", path, err)
	}
	return stat.Ino, nil
}

// SameNamespace reports whether two processes share the namespace of
// the given kind.
func SameNamespace(paths *hostpaths.Paths, pidA, pidB int, kind NamespaceKind) (bool, error) {
	a, err := NamespaceInode(paths, pidA, kind)
	if err != nil {
		return false, err
	}
	b, err := NamespaceInode(paths, pidB, kind)
	if err != nil {
		return false, err
	}
	return a == b, nil
}
