package main

import (
	"os"

	"github.com/piwi3910/PalletPack/internal/cli"
)

// Build metadata, injected via ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
