package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColoredPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	cases := map[string]string{
		"0.1.0-dev":            "0.1.0-dev",
		"1.2.3":                "1.2.3",
		"1.2.3-rc.1+build.123": "1.2.3-rc.1+build.123",
		"dev":                  "dev",
	}
	for in, want := range cases {
		if got := Colored(in); got != want {
			t.Errorf("Colored(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestColoredWithColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	if got := Colored("1.2.3"); got == "1.2.3" {
		t.Errorf("expected escape codes, got %q", got)
	}
}

func TestFillFromSettings(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}
	info := fillFromSettings(Info{Version: "1.0.0"}, settings)
	if info.Commit != "0123456789abcdef0123" || info.Date != "2026-10-01T12:00:00Z" || !info.Modified {
		t.Fatalf("unexpected info %+v", info)
	}
	if got := info.ShortCommit(); got != "0123456789ab" {
		t.Fatalf("ShortCommit = %q", got)
	}

	// ldflags values win over the embedded stamp
	info = fillFromSettings(Info{Commit: "feedbeef", Date: "yesterday"}, settings)
	if info.Commit != "feedbeef" || info.Date != "yesterday" {
		t.Fatalf("ldflags overwritten: %+v", info)
	}
}

func TestCurrentHasRuntimeFields(t *testing.T) {
	info := Current()
	if info.Version == "" || info.Go == "" || !strings.Contains(info.Platform, "/") {
		t.Fatalf("incomplete info %+v", info)
	}
}
