package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hackseek.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8870" || cfg.Pipeline.DefaultDepth != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
pipeline:
  default_level: 5
  seed: 42
telemetry:
  endpoint: "http://collector:4318"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("addr = %s", cfg.Server.Addr)
	}
	if cfg.Server.DBPath != "hackseek.db" {
		t.Fatalf("default db path lost: %s", cfg.Server.DBPath)
	}
	if cfg.Pipeline.DefaultLevel != 5 || cfg.Pipeline.Seed != 42 {
		t.Fatalf("pipeline overrides lost: %+v", cfg.Pipeline)
	}
	if !cfg.Telemetry.Enabled() {
		t.Fatal("telemetry should be enabled with endpoint set")
	}
}

func TestLoadRejectsOutOfRangeDials(t *testing.T) {
	path := writeConfig(t, "pipeline:\n  default_depth: 9\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "default_depth") {
		t.Fatalf("want dial validation error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
