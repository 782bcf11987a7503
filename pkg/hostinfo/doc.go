// Package hostinfo reads identity and state facts about the running
// host: kernel identification, boot time, namespace membership, local
// accounts, and BPF filesystem contents. Everything is read fresh from
// the kernel on each call; the package holds no caches.
//
// Functions that touch procfs, sysfs, or /etc take a *hostpaths.Paths
// so callers inside containers can point them at the host mounts.
package hostinfo
