// Where: internal/fsprobe/fsprobe_test.go
// What: Tests for filesystem probe helpers.
// Why: Ensure the .git carve-out behaves exactly as the flow assumes.
package fsprobe

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if !Exists(dir) {
		t.Fatalf("expected %s to exist", dir)
	}
	if Exists(filepath.Join(dir, "missing")) {
		t.Fatal("expected missing path to not exist")
	}
}

func TestIsEffectivelyEmpty(t *testing.T) {
	dir := t.TempDir()
	if !IsEffectivelyEmpty(dir) {
		t.Fatal("expected empty dir to be effectively empty")
	}

	if err := os.Mkdir(filepath.Join(dir, GitDir), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	if !IsEffectivelyEmpty(dir) {
		t.Fatal("expected dir with only .git to be effectively empty")
	}

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if IsEffectivelyEmpty(dir) {
		t.Fatal("expected dir with .git plus a file to not be effectively empty")
	}
}

func TestIsEffectivelyEmptyMissingDir(t *testing.T) {
	if IsEffectivelyEmpty(filepath.Join(t.TempDir(), "nope")) {
		t.Fatal("expected missing dir to not be effectively empty")
	}
}

func TestClearPreservesGit(t *testing.T) {
	dir := t.TempDir()
	gitDir := filepath.Join(dir, GitDir)
	if err := os.Mkdir(gitDir, 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref"), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "src", "deep"), 0o755); err != nil {
		t.Fatalf("mkdir src: %v", err)
	}

	if err := Clear(dir); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != GitDir {
		t.Fatalf("expected only .git to survive, got %d entries", len(entries))
	}
	if _, err := os.Stat(filepath.Join(gitDir, "HEAD")); err != nil {
		t.Fatalf("expected .git contents intact: %v", err)
	}
}

func TestClearMissingDirIsNoop(t *testing.T) {
	if err := Clear(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("Clear on missing dir: %v", err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := Clear(dir); err != nil {
		t.Fatalf("first Clear: %v", err)
	}
	if err := Clear(dir); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
