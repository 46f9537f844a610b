package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Scheduler.MaxWorkers != 128 {
		t.Errorf("max workers = %d, want 128", cfg.Scheduler.MaxWorkers)
	}
	if cfg.Fetch.MockHost != "example.com" {
		t.Errorf("mock host = %q, want example.com", cfg.Fetch.MockHost)
	}
	if cfg.Timer.Clock != ClockReal {
		t.Errorf("clock = %q, want %q", cfg.Timer.Clock, ClockReal)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[scheduler]
max_workers = 8

[timer]
clock = "virtual"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheduler.MaxWorkers != 8 {
		t.Errorf("max workers = %d, want 8", cfg.Scheduler.MaxWorkers)
	}
	if cfg.Timer.Clock != ClockVirtual {
		t.Errorf("clock = %q, want virtual", cfg.Timer.Clock)
	}
	// Keys the manifest omits keep their defaults.
	if cfg.Fetch.MockHost != "example.com" {
		t.Errorf("mock host = %q, want the default", cfg.Fetch.MockHost)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "absent.toml")); err == nil {
		t.Error("missing file loaded without error")
	}

	bad := writeManifest(t, dir, `[scheduler` + "\n")
	if _, err := Load(bad); err == nil {
		t.Error("malformed manifest loaded without error")
	}

	writeManifest(t, dir, "[scheduler]\nmax_workers = -1\n")
	if _, err := Load(filepath.Join(dir, ManifestName)); err == nil || !strings.Contains(err.Error(), "max_workers") {
		t.Errorf("negative workers err = %v", err)
	}

	writeManifest(t, dir, "[timer]\nclock = \"sundial\"\n")
	if _, err := Load(filepath.Join(dir, ManifestName)); err == nil || !strings.Contains(err.Error(), "timer.clock") {
		t.Errorf("bad clock err = %v", err)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeManifest(t, root, "")

	got, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("Find = %q/%v, want %q/true", got, ok, want)
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	// An isolated tree with no manifest anywhere below the temp root. The
	// walk can still escape into the real filesystem, so place a manifest
	// at the tree root and point discovery below it.
	root := t.TempDir()
	writeManifest(t, root, "[fetch]\nmock_host = \"local.test\"\n")
	nested := filepath.Join(root, "x")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Fetch.MockHost != "local.test" {
		t.Fatalf("mock host = %q, want local.test", cfg.Fetch.MockHost)
	}
	if cfg.Scheduler.MaxWorkers != 128 {
		t.Fatalf("max workers = %d, want the default", cfg.Scheduler.MaxWorkers)
	}
}
