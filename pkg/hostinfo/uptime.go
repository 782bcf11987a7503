package hostinfo

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Real-Fruit-Snacks/Bedrock/pkg/hostpaths"
)

// Uptime returns how long the system has been up, read from
// <proc>/uptime.
func Uptime(paths *hostpaths.Paths) (time.Duration, error) {
	path := paths.Proc("uptime")
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("uptime: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("uptime: %s is empty", path)
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("uptime: parsing %q: %w", fields[0], err)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// BootTime returns when the system booted, read from the btime line of
// <proc>/stat. The kernel records it as whole seconds since the epoch.
func BootTime(paths *hostpaths.Paths) (time.Time, error) {
	path := paths.Proc("stat")
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("boottime: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "btime ") {
			continue
		}
		secs, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "btime ")), 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("boottime: parsing %q: %w", line, err)
		}
		return time.Unix(secs, 0), nil
	}
	if err := scanner.Err(); err != nil {
		return time.Time{}, fmt.Errorf("boottime: reading %s: %w", path, err)
	}
	return time.Time{}, fmt.Errorf("boottime: no btime line in %s", path)
}
