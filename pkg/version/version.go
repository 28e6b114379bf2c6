package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags, for example:
//
//	-X github.com/nkamat/throng/pkg/version.Version=v1.2.0
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get assembles build information. When ldflags left Commit empty it
// falls back to the VCS revision embedded by the Go toolchain.
func Get() Info {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	return Info{
		Version:   Version,
		Commit:    commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}

func (i Info) String() string {
	s := fmt.Sprintf("throng %s (%s, %s, %s)", i.Version, i.Commit, i.GoVersion, i.Platform)
	if i.Date != "" {
		s += " built " + i.Date
	}
	return s
}
