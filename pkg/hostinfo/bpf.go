package hostinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/Real-Fruit-Snacks/Bedrock/pkg/hostpaths"
)

// BPFFSMounted reports whether a bpf filesystem is mounted at
// <sys>/fs/bpf. A missing mount point counts as not mounted.
func BPFFSMounted(paths *hostpaths.Paths) (bool, error) {
	path := paths.Sys("fs", "bpf")
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return false, nil
		}
		return false, fmt.Errorf("bpf: statfs %s: %w", path, err)
	}
	return stat.Type == unix.BPF_FS_MAGIC, nil
}

// PinnedBPFObjects walks <sys>/fs/bpf and returns the paths of all
// pinned programs, maps, and links found there. Inaccessible entries
// are skipped. A missing or empty bpffs yields an empty list.
func PinnedBPFObjects(paths *hostpaths.Paths) ([]string, error) {
	root := paths.Sys("fs", "bpf")

	fi, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("bpf: %w", err)
	}
	if !fi.IsDir() {
		return nil, nil
	}

	var pinned []string
	err = filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if path == root {
			return nil
		}
		pinned = append(pinned, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bpf: walking %s: %w", root, err)
	}
	return pinned, nil
}
