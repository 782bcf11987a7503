package hostinfo

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Real-Fruit-Snacks/Bedrock/pkg/hostpaths"
)

func TestNamespaceInode(t *testing.T) {
	paths := hostpaths.Default()
	self := os.Getpid()

	t.Run("every kind resolves for the current process", func(t *testing.T) {
		kinds := []NamespaceKind{CgroupNS, IPCNS, MountNS, NetNS, PIDNS, UserNS, UTSNS}
		for _, kind := range kinds {
			inode, err := NamespaceInode(paths, self, kind)
			require.NoError(t, err, "kind %s", kind)
			assert.NotZero(t, inode, "kind %s", kind)
		}
	})

	t.Run("stable across reads", func(t *testing.T) {
		a, err := NamespaceInode(paths, self, PIDNS)
		require.NoError(t, err)
		b, err := NamespaceInode(paths, self, PIDNS)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NamespaceInode(paths, self, NamespaceKind("rootfs"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rootfs")
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		_, err := NamespaceInode(paths, self, NamespaceKind("../status"))
		require.Error(t, err)
	})

	t.Run("missing pid", func(t *testing.T) {
		_, err := NamespaceInode(paths, 1<<30, PIDNS)
		require.Error(t, err)
	})
}

func TestSameNamespace(t *testing.T) {
	paths := hostpaths.Default()
	self := os.Getpid()

	t.Run("process shares with itself", func(t *testing.T) {
		same, err := SameNamespace(paths, self, self, NetNS)
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("shares pid namespace with parent", func(t *testing.T) {
		// The test runner and its parent are in the same namespace
		// unless the harness unshared one, so only assert on error.
		ppid := os.Getppid()
		if ppid <= 1 {
			t.Skip("no usable parent pid")
		}
		_, err := SameNamespace(paths, self, ppid, PIDNS)
		require.NoError(t, err)
	})
}
