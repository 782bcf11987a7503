package hostinfo

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCollect(t *testing.T) {
	c := NewCollector(zap.NewNop(), nil)
	snap := c.Collect()
	require.NotNil(t, snap)

	t.Run("identity", func(t *testing.T) {
		_, err := uuid.Parse(snap.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, snap.ProbeVersion)
		assert.Len(t, snap.SelfSHA256, 64)
		assert.WithinDuration(t, time.Now(), snap.CollectedAt, time.Minute)
		assert.Equal(t, os.Getuid(), snap.UID)
	})

	t.Run("clock readings", func(t *testing.T) {
		assert.NotZero(t, snap.MonotonicNS)
		assert.NotEmpty(t, snap.Uptime)
		require.NotNil(t, snap.BootTime)
		assert.True(t, snap.BootTime.Before(time.Now()))
	})

	t.Run("kernel identity", func(t *testing.T) {
		assert.Equal(t, "Linux", snap.Kernel.Sysname)
		assert.NotEmpty(t, snap.Kernel.Release)
	})

	t.Run("sysconf values", func(t *testing.T) {
		assert.Positive(t, snap.PageSize)
		assert.Equal(t, snap.PageSize, int64(1)<<snap.PageShift)
		assert.Positive(t, snap.ClockTick)
	})

	t.Run("limits", func(t *testing.T) {
		require.NotNil(t, snap.OpenFile)
		assert.LessOrEqual(t, snap.OpenFile.Soft, snap.OpenFile.Hard)
	})

	t.Run("two snapshots differ", func(t *testing.T) {
		other := c.Collect()
		assert.NotEqual(t, snap.ID, other.ID)
		assert.GreaterOrEqual(t, other.MonotonicNS, snap.MonotonicNS)
	})
}

func TestNewCollectorDefaults(t *testing.T) {
	c := NewCollector(nil, nil)
	require.NotNil(t, c)
	require.NotNil(t, c.Collect())
}

func TestSnapshotJSON(t *testing.T) {
	c := NewCollector(zap.NewNop(), nil)
	snap := c.Collect()

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "id")
	assert.Contains(t, decoded, "monotonic_ns")
	assert.Contains(t, decoded, "kernel")
	assert.Contains(t, decoded, "page_size")
}
