// Where: internal/config/global_test.go
// What: Tests for global config helpers.
// Why: Ensure global config round-trips correctly.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGlobalConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := GlobalConfig{
		Version:         1,
		DefaultTemplate: "react-ts",
	}

	if err := SaveGlobalConfig(path, cfg); err != nil {
		t.Fatalf("save global config: %v", err)
	}

	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loaded) {
		t.Fatalf("config mismatch: expected %#v, got %#v", cfg, loaded)
	}
}

func TestGlobalConfigPathHonorsOverride(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv(EnvConfigHome, baseDir)

	got, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("global config path: %v", err)
	}
	if got != filepath.Join(baseDir, "config.yaml") {
		t.Fatalf("unexpected config path: %s", got)
	}
}

func TestEnsureGlobalConfigCreatesFile(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv(EnvConfigHome, baseDir)

	if err := EnsureGlobalConfig(); err != nil {
		t.Fatalf("ensure global config: %v", err)
	}

	path := filepath.Join(baseDir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load global config: %v", err)
	}
	if loaded.Version != 1 {
		t.Fatalf("unexpected version: %d", loaded.Version)
	}
}

func TestLoadGlobalConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadGlobalConfig(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
