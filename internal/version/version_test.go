package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

// stub replaces the stamped values and the embedded build information for one test.
func stub(t *testing.T, version, commit, date string, bi *debug.BuildInfo) {
	t.Helper()
	oldVersion, oldCommit, oldDate, oldRead := Version, Commit, Date, readBuildInfo
	t.Cleanup(func() { Version, Commit, Date, readBuildInfo = oldVersion, oldCommit, oldDate, oldRead })

	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{"dev build", "unknown", "unknown", "chromatic version dev ("},
		{"release", "0123456789abcdef", "2025-01-02T03:04:05Z", "commit: 01234567, built: 2025-01-02T03:04:05Z"},
		{"short commit", "abc", "2025-01-02T03:04:05Z", "commit: abc,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub(t, "dev", tt.commit, tt.date, nil)
			if got := String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestGetInfoFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "github.com/jmylchreest/chromatic", Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.time", Value: "2026-02-03T04:05:06Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name    string
		version string
		commit  string
		want    Info
	}{
		{
			name:    "unstamped",
			version: "dev",
			commit:  "unknown",
			want:    Info{Version: "v0.3.0", Commit: "fedcba9876543210", Date: "2026-02-03T04:05:06Z", Modified: true, GoVersion: "go1.25.1"},
		},
		{
			name:    "stamped values win",
			version: "v1.0.0",
			commit:  "0123456789abcdef",
			want:    Info{Version: "v1.0.0", Commit: "0123456789abcdef", Date: "2026-02-03T04:05:06Z", Modified: true, GoVersion: "go1.25.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub(t, tt.version, tt.commit, "unknown", bi)
			got := GetInfo()
			got.Platform = ""
			if got != tt.want {
				t.Errorf("GetInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}

	stub(t, "dev", "unknown", "unknown", bi)
	if got := String(); !strings.Contains(got, "commit: fedcba98-dirty") {
		t.Errorf("String() = %q, want a dirty short commit", got)
	}
	if got := Short(); got != "v0.3.0" {
		t.Errorf("Short() = %q, want v0.3.0", got)
	}
}

func TestGetInfoDevelBuild(t *testing.T) {
	stub(t, "dev", "unknown", "unknown", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	info := GetInfo()
	if info.Version != "dev" || info.Commit != "unknown" || info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo() = %+v", info)
	}
}
