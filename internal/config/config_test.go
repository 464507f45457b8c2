package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("WHATIF_THEME", "")
	t.Setenv("WHATIF_LEDGER", "")
	t.Setenv("WHATIF_ADDR", "")
	return dir
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	isolate(t)

	if Exists() {
		t.Fatal("Exists reported a config in an empty dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultConfig()
	cfg.General.DefaultReport = "cash"
	cfg.General.DefaultSpan = 6
	cfg.General.LedgerPath = "/tmp/books.db"
	cfg.Appearance.Theme = "catppuccin-mocha"
	cfg.Chat.DelayMS = 50
	cfg.Daemon.Addr = "127.0.0.1:9999"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, want := Path(), filepath.Join(dir, "whatif", "config.toml"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
	info, err := os.Stat(Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config perm = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip = %+v, want %+v", got, cfg)
	}
	if got.Chat.Delay() != 50*time.Millisecond {
		t.Fatalf("Delay = %v", got.Chat.Delay())
	}
}

func TestLoadBadTOML(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\nbroken"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("WHATIF_THEME", "tokyo-night")
	t.Setenv("WHATIF_LEDGER", "/data/ledger.db")
	t.Setenv("WHATIF_ADDR", ":8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "tokyo-night" || cfg.General.LedgerPath != "/data/ledger.db" || cfg.Daemon.Addr != ":8080" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}
