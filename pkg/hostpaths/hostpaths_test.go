package hostpaths

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HOST_PROC", "HOST_SYS", "HOST_ETC"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/proc", p.ProcRoot)
	assert.Equal(t, "/sys", p.SysRoot)
	assert.Equal(t, "/etc", p.EtcRoot)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOST_PROC", "/host/proc")
	t.Setenv("HOST_SYS", "/host/sys")
	t.Setenv("HOST_ETC", "/host/etc")

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/host/proc", p.ProcRoot)
	assert.Equal(t, "/host/sys", p.SysRoot)
	assert.Equal(t, "/host/etc", p.EtcRoot)
}

func TestJoinHelpers(t *testing.T) {
	p := &Paths{ProcRoot: "/host/proc", SysRoot: "/host/sys", EtcRoot: "/host/etc"}

	assert.Equal(t, "/host/proc/uptime", p.Proc("uptime"))
	assert.Equal(t, "/host/proc/1/ns/pid", p.Proc("1", "ns", "pid"))
	assert.Equal(t, "/host/sys/kernel/security/lsm", p.Sys("kernel", "security", "lsm"))
	assert.Equal(t, "/host/etc/passwd", p.Etc("passwd"))
}

func TestJoinWithoutElements(t *testing.T) {
	p := Default()
	assert.Equal(t, "/proc", p.Proc())
	assert.Equal(t, "/sys", p.Sys())
	assert.Equal(t, "/etc", p.Etc())
}
