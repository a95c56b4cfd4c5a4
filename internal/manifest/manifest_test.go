// Where: internal/manifest/manifest_test.go
// What: Tests for manifest patching and serialization.
// Why: Update mode must only touch the dependency map.
package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPinDependencyPreservesExistingEntries(t *testing.T) {
	m, err := Parse([]byte(`{
  "name": "proj",
  "version": "1.2.3",
  "dependencies": {"lodash": "^4.0.0"},
  "scripts": {"dev": "vite"}
}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	m.PinDependency(PinnedDependency, PinnedVersion)

	deps := m.Dependencies()
	if deps["lodash"] != "^4.0.0" {
		t.Fatalf("lodash entry disturbed: %q", deps["lodash"])
	}
	if deps[PinnedDependency] != PinnedVersion {
		t.Fatalf("pin missing: %#v", deps)
	}
	if scripts, ok := m.Field("scripts"); !ok || scripts == nil {
		t.Fatal("unrelated scripts field dropped")
	}
}

func TestPinDependencyCreatesMap(t *testing.T) {
	m := New("fresh")
	m.PinDependency(PinnedDependency, PinnedVersion)
	if got := m.Dependencies()[PinnedDependency]; got != PinnedVersion {
		t.Fatalf("expected pin, got %q", got)
	}
}

func TestSaveUsesTwoSpaceIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	m := New("indent-check")
	if err := m.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(payload)
	if !strings.Contains(text, "\n  \"name\": \"indent-check\"") {
		t.Fatalf("expected 2-space indentation, got:\n%s", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Fatal("expected trailing newline")
	}
}

func TestSaveFullyOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := New("small").Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Name() != "small" {
		t.Fatalf("unexpected name: %q", reloaded.Name())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), FileName)); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":        "{broken",
		"not an object":   `["a"]`,
		"bad deps":        `{"name": "x", "dependencies": {"y": 1}}`,
		"non-string name": `{"name": 42}`,
	}
	for label, payload := range cases {
		if _, err := Parse([]byte(payload)); err == nil {
			t.Fatalf("%s: expected parse error", label)
		}
	}
}

func TestSetName(t *testing.T) {
	m, err := Parse([]byte(`{"name": "template-name", "version": "0.0.0"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m.SetName("resolved-name")
	if m.Name() != "resolved-name" {
		t.Fatalf("unexpected name: %q", m.Name())
	}
}

func TestCheckVersion(t *testing.T) {
	ok, err := Parse([]byte(`{"name": "x", "version": "1.0.0"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := ok.CheckVersion(); err != nil {
		t.Fatalf("expected valid version, got %v", err)
	}

	bad, err := Parse([]byte(`{"name": "x", "version": "not-a-version"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := bad.CheckVersion(); err == nil {
		t.Fatal("expected version error")
	}

	none, err := Parse([]byte(`{"name": "x"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := none.CheckVersion(); err == nil {
		t.Fatal("expected error for missing version")
	}
}
