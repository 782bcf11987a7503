package hostinfo

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Real-Fruit-Snacks/Bedrock/pkg/hostpaths"
)

// Account is one entry from the passwd database.
type Account struct {
	Username string `json:"username"`
	UID      uint32 `json:"uid"`
	GID      uint32 `json:"gid"`
	Home     string `json:"home"`
	Shell    string `json:"shell"`
}

// Accounts parses <etc>/passwd and returns every well-formed entry.
// Malformed lines are skipped rather than failing the whole read.
func Accounts(paths *hostpaths.Paths) ([]Account, error) {
	path := paths.Etc("passwd")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("account: %w", err)
	}
	defer f.Close()

	var accounts []Account
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, ":", 7)
		if len(fields) < 7 {
			continue
		}
		uid, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			continue
		}
		gid, err := strconv.ParseUint(fields[3], 10, 32)
		if err != nil {
			continue
		}
		accounts = append(accounts, Account{
			Username: fields[0],
			UID:      uint32(uid),
			GID:      uint32(gid),
			Home:     fields[5],
			Shell:    fields[6],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("account: reading %s: %w", path, err)
	}
	return accounts, nil
}

// LookupUID returns the first passwd entry with the given uid.
func LookupUID(paths *hostpaths.Paths, uid uint32) (Account, error) {
	accounts, err := Accounts(paths)
	if err != nil {
		return Account{}, err
	}
	for _, a := range accounts {
		if a.UID == uid {
			return a, nil
		}
	}
	return Account{}, fmt.Errorf("account: uid %d not found", uid)
}

// CurrentAccount returns the passwd entry for the process's real uid.
func CurrentAccount(paths *hostpaths.Paths) (Account, error) {
	return LookupUID(paths, uint32(os.Getuid()))
}
