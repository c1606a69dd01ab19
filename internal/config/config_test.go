package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Fatal("Exists() = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{
		General:    GeneralConfig{DataFile: "/tmp/weights.txt"},
		Appearance: AppearanceConfig{Theme: "tokyo-night"},
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "wtrack"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded on invalid TOML")
	}
}

func TestDataFilePrecedence(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv(EnvDataFile, "")

	cfg := DefaultConfig()
	if got, want := DataFile(cfg), filepath.Join(dataHome, "wtrack", "weights.txt"); got != want {
		t.Fatalf("default DataFile = %q, want %q", got, want)
	}

	cfg.General.DataFile = "/from/config.txt"
	if got := DataFile(cfg); got != "/from/config.txt" {
		t.Fatalf("config DataFile = %q", got)
	}

	t.Setenv(EnvDataFile, "/from/env.txt")
	if got := DataFile(cfg); got != "/from/env.txt" {
		t.Fatalf("env DataFile = %q", got)
	}
}
