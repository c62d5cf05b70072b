// Package build describes the running candle binary.
package build

import (
	"regexp"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

// pseudoVersion matches the timestamp-hash suffix of Go pseudo-versions.
var pseudoVersion = regexp.MustCompile(`\d{14}-[0-9a-f]{12}$`)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// WithModuleInfo fills fields left at their ldflags defaults from the VCS
// stamp `go build` embeds, so `go install` builds still report a commit.
func (i Info) WithModuleInfo() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if i.GoVersion == "" {
		i.GoVersion = bi.GoVersion
	}
	if (i.Version == "" || i.Version == "dev") && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Commit == "" || i.Commit == unknown {
				i.Commit = s.Value
			}
		case "vcs.time":
			if i.BuildDate == "" || i.BuildDate == unknown {
				i.BuildDate = s.Value
			}
		}
	}
	return i
}

// Short is the one-line form used by --version.
func (i Info) Short() string {
	commit := i.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit == "" || commit == unknown {
		return i.Version
	}
	return i.Version + " (" + commit + ")"
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/candle"
}

// IsRelease reports whether the version looks like a tagged release.
func (i Info) IsRelease() bool {
	return strings.HasPrefix(i.Version, "v") && !pseudoVersion.MatchString(i.Version)
}
