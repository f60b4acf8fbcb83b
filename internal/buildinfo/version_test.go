package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func stamp(t *testing.T, v, c, d string) {
	t.Helper()
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })
	Version, Commit, Date = v, c, d
}

func TestString(t *testing.T) {
	stamp(t, "v1.2.3", "0123456789abcdef0123", "2026-01-02")

	got := String()
	require.True(t, strings.HasPrefix(got, "wireframe v1.2.3 (commit 0123456789ab, built 2026-01-02, "), got)
	require.Contains(t, got, runtime.Version())
	require.Equal(t, got+"\n", Template())
}

func TestResolvedVersion(t *testing.T) {
	old := readBuildInfo
	t.Cleanup(func() { readBuildInfo = old })

	info := func(v string) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: v}}, true
		}
	}

	tests := []struct {
		name    string
		stamped string
		module  func() (*debug.BuildInfo, bool)
		want    string
	}{
		{"stamped wins", "v2.0.0", info("v1.0.0"), "v2.0.0"},
		{"module version", "dev", info("v1.0.0"), "v1.0.0"},
		{"devel build", "dev", info("(devel)"), "dev"},
		{"no build info", "dev", func() (*debug.BuildInfo, bool) { return nil, false }, "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamp(t, tt.stamped, "none", "unknown")
			readBuildInfo = tt.module
			require.Equal(t, tt.want, ResolvedVersion())
		})
	}
}
