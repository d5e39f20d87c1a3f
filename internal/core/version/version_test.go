package version

import (
	"runtime/debug"
	"testing"

	kit "crimemap/internal/platform/testkit"
)

func TestInfoDefaults(t *testing.T) {
	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) { return nil, false })

	bi := Info("crimemap-api")
	if bi.Service != "crimemap-api" || bi.Version != "dev" || bi.Commit != "none" || bi.Date != "unknown" {
		t.Fatalf("unexpected defaults: %+v", bi)
	}
}

func TestInfoFallsBackToVCS(t *testing.T) {
	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.25.0",
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
			},
		}, true
	})

	bi := Info("crimemap-report")
	if bi.Commit != "abc123" || bi.Date != "2026-10-01T00:00:00Z" || bi.GoVersion != "go1.25.0" {
		t.Fatalf("vcs fallback mismatch: %+v", bi)
	}
}

func TestInfoKeepsInjectedCommit(t *testing.T) {
	kit.Swap(t, &commit, "feedbee")
	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}}}, true
	})

	if bi := Info("x"); bi.Commit != "feedbee" {
		t.Fatalf("commit = %q, want injected value", bi.Commit)
	}
}
