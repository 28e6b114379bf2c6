package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet_FillsRuntimeFields(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; info.Platform != want {
		t.Errorf("Platform = %q, want %q", info.Platform, want)
	}
	// Commit comes from ldflags or the embedded VCS stamp; in a plain
	// test binary neither exists.
	if info.Commit == "" {
		t.Error("Commit is empty, want a revision or \"unknown\"")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "without build date",
			info: Info{Version: "v1.2.0", Commit: "abc1234", GoVersion: "go1.25.5", Platform: "linux/amd64"},
			want: "throng v1.2.0 (abc1234, go1.25.5, linux/amd64)",
		},
		{
			name: "with build date",
			info: Info{Version: "dev", Commit: "unknown", GoVersion: "go1.25.5", Platform: "darwin/arm64", Date: "2026-08-30"},
			want: "throng dev (unknown, go1.25.5, darwin/arm64) built 2026-08-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString_MentionsBinaryName(t *testing.T) {
	if s := Get().String(); !strings.HasPrefix(s, "throng ") {
		t.Errorf("String() = %q, want throng prefix", s)
	}
}
