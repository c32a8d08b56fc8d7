// Package build provides domain entities for build information.
package build

import "runtime"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// WithDefaults fills fields ldflags left empty.
func (i Info) WithDefaults() Info {
	if i.Version == "" {
		i.Version = "dev"
	}
	if i.Commit == "" {
		i.Commit = "none"
	}
	if i.BuildDate == "" {
		i.BuildDate = "unknown"
	}
	if i.GoVersion == "" {
		i.GoVersion = runtime.Version()
	}
	return i
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/themeroot"
}
