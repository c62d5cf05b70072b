package main

import (
	"runtime"

	"github.com/bnema/candle/internal/cli/cmd"
	"github.com/bnema/candle/internal/domain/build"
)

// Set via -ldflags "-X main.version=...".
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	info := build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
	cmd.SetBuildInfo(info.WithModuleInfo())
	cmd.Execute()
}
