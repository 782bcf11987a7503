// Command sysprobe collects a host snapshot and writes it to stdout as
// JSON. Logs go to stderr so the output stays machine-readable.
//
// Set HOST_PROC, HOST_SYS, and HOST_ETC when running inside a container
// to probe the host mounts instead of the container's own filesystems.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Real-Fruit-Snacks/Bedrock/internal/logging"
	"github.com/Real-Fruit-Snacks/Bedrock/pkg/hostinfo"
	"github.com/Real-Fruit-Snacks/Bedrock/pkg/hostpaths"
	"github.com/Real-Fruit-Snacks/Bedrock/pkg/version"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, error")
		dev         = flag.Bool("dev", false, "console logging instead of JSON")
		pretty      = flag.Bool("pretty", false, "indent the snapshot output")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	logger, err := logging.New(logging.Config{
		Level:       *logLevel,
		Development: *dev,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	paths, err := hostpaths.Load()
	if err != nil {
		logger.Fatal("resolving host paths", zap.Error(err))
	}

	snap := hostinfo.NewCollector(logger, paths).Collect()

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(snap); err != nil {
		logger.Fatal("encoding snapshot", zap.Error(err))
	}
}
