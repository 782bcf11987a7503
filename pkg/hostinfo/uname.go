package hostinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// UnameInfo holds the kernel identification strings from uname(2).
type UnameInfo struct {
	Sysname    string `json:"sysname"`
	Nodename   string `json:"nodename"`
	Release    string `json:"release"`
	Version    string `json:"version"`
	Machine    string `json:"machine"`
	Domainname string `json:"domainname"`
}

// Uname returns the kernel identification of the running system.
func Uname() (UnameInfo, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return UnameInfo{}, fmt.Errorf("uname: %w", err)
	}
	return UnameInfo{
		Sysname:    unix.ByteSliceToString(uts.Sysname[:]),
		Nodename:   unix.ByteSliceToString(uts.Nodename[:]),
		Release:    unix.ByteSliceToString(uts.Release[:]),
		Version:    unix.ByteSliceToString(uts.Version[:]),
		Machine:    unix.ByteSliceToString(uts.Machine[:]),
		Domainname: unix.ByteSliceToString(uts.Domainname[:]),
	}, nil
}

// KernelRelease returns the kernel release string, e.g. "6.8.0-45-generic".
func KernelRelease() (string, error) {
	info, err := Uname()
	if err != nil {
		return "", err
	}
	return info.Release, nil
}
