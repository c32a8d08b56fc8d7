package main

import (
	"runtime"

	"github.com/bnema/themeroot/internal/cli/cmd"
	"github.com/bnema/themeroot/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	raiseLimits()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
