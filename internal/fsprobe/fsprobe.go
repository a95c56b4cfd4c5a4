// Where: internal/fsprobe/fsprobe.go
// What: Filesystem existence and emptiness checks plus directory clearing.
// Why: Give the prompt flow boolean facts about the target without owning policy.
package fsprobe

import (
	"os"
	"path/filepath"
)

// GitDir is the version-control metadata entry preserved by Clear and
// ignored by IsEffectivelyEmpty.
const GitDir = ".git"

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsEffectivelyEmpty reports whether dir has no entries, or exactly one
// entry named .git.
func IsEffectivelyEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	if len(entries) == 0 {
		return true
	}
	return len(entries) == 1 && entries[0].Name() == GitDir
}

// Clear removes every entry in dir except .git. A missing dir is a no-op,
// and entries that vanish mid-removal are tolerated so the operation is
// idempotent.
func Clear(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.Name() == GitDir {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
	}
	return nil
}
