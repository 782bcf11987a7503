package hostinfo

import (
	"net"
	"net/netip"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/Real-Fruit-Snacks/Bedrock/pkg/digest"
	"github.com/Real-Fruit-Snacks/Bedrock/pkg/hostpaths"
	"github.com/Real-Fruit-Snacks/Bedrock/pkg/sys"
	"github.com/Real-Fruit-Snacks/Bedrock/pkg/version"
)

// Snapshot is a point-in-time reading of the host facts this package
// can gather. Fields a probe could not fill are left at their zero
// value; the collector logs the failure and keeps going.
type Snapshot struct {
	ID           string    `json:"id"`
	ProbeVersion string    `json:"probe_version"`
	SelfSHA256   string    `json:"self_sha256,omitempty"`
	CollectedAt  time.Time `json:"collected_at"`

	MonotonicNS uint64     `json:"monotonic_ns"`
	BootTime    *time.Time `json:"boot_time,omitempty"`
	Uptime      string     `json:"uptime,omitempty"`

	Kernel UnameInfo `json:"kernel"`

	PageSize  int64  `json:"page_size"`
	PageShift uint64 `json:"page_shift"`
	ClockTick int64  `json:"clock_tick"`

	LSMs          []string `json:"lsms,omitempty"`
	BPFLSMEnabled bool     `json:"bpf_lsm_enabled"`
	BPFFSMounted  bool     `json:"bpffs_mounted"`
	PinnedBPF     []string `json:"pinned_bpf,omitempty"`

	UID      int      `json:"uid"`
	Account  *Account `json:"account,omitempty"`
	OpenFile *Limits  `json:"open_files,omitempty"`

	PublicAddrs []string `json:"public_addrs,omitempty"`
}

// Limits mirrors one resource limit pair in the snapshot.
type Limits struct {
	Soft uint64 `json:"soft"`
	Hard uint64 `json:"hard"`
}

// Collector gathers snapshots. Probe failures degrade the snapshot
// instead of aborting it.
type Collector struct {
	log   *zap.Logger
	paths *hostpaths.Paths
}

// NewCollector returns a collector reading through paths. A nil logger
// disables logging.
func NewCollector(log *zap.Logger, paths *hostpaths.Paths) *Collector {
	if log == nil {
		log = zap.NewNop()
	}
	if paths == nil {
		paths = hostpaths.Default()
	}
	return &Collector{log: log, paths: paths}
}

// Collect reads every probe once and assembles a snapshot.
func (c *Collector) Collect() *Snapshot {
	snap := &Snapshot{
		ID:           uuid.NewString(),
		ProbeVersion: version.Version,
		CollectedAt:  time.Now().UTC(),
		UID:          sys.CurrentUID(),
	}

	if ns, err := sys.KtimeNS(); err != nil {
		c.log.Warn("monotonic clock read failed", zap.Error(err))
	} else {
		snap.MonotonicNS = ns
	}

	if t, err := BootTime(c.paths); err != nil {
		c.log.Warn("boot time read failed", zap.Error(err))
	} else {
		snap.BootTime = &t
	}

	if d, err := Uptime(c.paths); err != nil {
		c.log.Warn("uptime read failed", zap.Error(err))
	} else {
		snap.Uptime = d.String()
	}

	if info, err := Uname(); err != nil {
		c.log.Warn("uname failed", zap.Error(err))
	} else {
		snap.Kernel = info
	}

	if size, err := sys.PageSize(); err != nil {
		c.log.Warn("page size read failed", zap.Error(err))
	} else {
		snap.PageSize = size
	}

	if shift, err := sys.PageShift(); err != nil {
		c.log.Warn("page shift derivation failed", zap.Error(err))
	} else {
		snap.PageShift = shift
	}

	if tick, err := sys.ClockTick(); err != nil {
		c.log.Warn("clock tick read failed", zap.Error(err))
	} else {
		snap.ClockTick = tick
	}

	if lsms, err := sys.ActiveLSMs(); err != nil {
		c.log.Warn("lsm list read failed", zap.Error(err))
	} else {
		snap.LSMs = lsms
		for _, lsm := range lsms {
			if lsm == "bpf" {
				snap.BPFLSMEnabled = true
			}
		}
	}

	if mounted, err := BPFFSMounted(c.paths); err != nil {
		c.log.Warn("bpffs check failed", zap.Error(err))
	} else {
		snap.BPFFSMounted = mounted
	}

	if pinned, err := PinnedBPFObjects(c.paths); err != nil {
		c.log.Warn("pinned bpf scan failed", zap.Error(err))
	} else {
		snap.PinnedBPF = pinned
	}

	if acct, err := CurrentAccount(c.paths); err != nil {
		c.log.Warn("account lookup failed", zap.Error(err))
	} else {
		snap.Account = &acct
	}

	if rl, err := sys.Getrlimit(unix.RLIMIT_NOFILE); err != nil {
		c.log.Warn("rlimit read failed", zap.Error(err))
	} else {
		snap.OpenFile = &Limits{Soft: rl.Soft, Hard: rl.Hard}
	}

	if addrs, err := publicAddresses(); err != nil {
		c.log.Warn("interface scan failed", zap.Error(err))
	} else {
		snap.PublicAddrs = addrs
	}

	if sum, err := selfDigest(); err != nil {
		c.log.Warn("self digest failed", zap.Error(err))
	} else {
		snap.SelfSHA256 = sum
	}

	return snap
}

// selfDigest hashes the running executable so the snapshot identifies
// exactly which build produced it.
func selfDigest() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	f, err := os.Open(exe)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return digest.SHA256.SumReader(f)
}

// publicAddresses returns the globally routable addresses assigned to
// the host's interfaces.
func publicAddresses() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var public []string
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip, ok := netip.AddrFromSlice(ipNet.IP)
			if !ok {
				continue
			}
			ip = ip.Unmap()
			if sys.IsPublicIP(ip) {
				public = append(public, ip.String())
			}
		}
	}
	return public, nil
}
