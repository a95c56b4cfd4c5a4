// Where: internal/manifest/manifest.go
// What: package.json read, patch, and write helpers.
// Why: Keep manifest mutation rules (name overwrite, dependency pin) in one place.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
)

const (
	// FileName is the manifest file written into every scaffolded project.
	FileName = "package.json"

	// PinnedDependency and PinnedVersion form the dependency entry forced
	// into every manifest this tool creates or updates.
	PinnedDependency = "stencil-scripts"
	PinnedVersion    = "^0.4.0"

	// InitialVersion is the version field of synthesized manifests.
	InitialVersion = "0.0.0"
)

// Manifest is a decoded package.json document. Unrelated fields survive a
// load/patch/save cycle untouched.
type Manifest struct {
	doc map[string]any
}

// New synthesizes a minimal manifest with only name and version.
func New(name string) *Manifest {
	return &Manifest{doc: map[string]any{
		"name":    name,
		"version": InitialVersion,
	}}
}

// Load reads and validates a manifest file. A missing or malformed file is
// an error; callers in update mode treat it as fatal for the run.
func Load(path string) (*Manifest, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(payload)
}

// Parse decodes manifest bytes and validates them against the manifest
// schema.
func Parse(payload []byte) (*Manifest, error) {
	var document any
	if err := json.Unmarshal(payload, &document); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if err := validateManifest(document); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	doc, ok := document.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid manifest: not a JSON object")
	}
	return &Manifest{doc: doc}, nil
}

// Save writes the manifest with stable 2-space indentation, fully
// overwriting the destination.
func (m *Manifest) Save(path string) error {
	payload, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Name returns the manifest name field, or "" when absent.
func (m *Manifest) Name() string {
	name, _ := m.doc["name"].(string)
	return name
}

// SetName overwrites the manifest name field.
func (m *Manifest) SetName(name string) {
	m.doc["name"] = name
}

// Version returns the manifest version field, or "" when absent.
func (m *Manifest) Version() string {
	version, _ := m.doc["version"].(string)
	return version
}

// CheckVersion reports whether the version field parses as semver. Update
// mode surfaces a failure as a warning, not an error.
func (m *Manifest) CheckVersion() error {
	version := m.Version()
	if version == "" {
		return fmt.Errorf("manifest has no version field")
	}
	if _, err := semver.NewVersion(version); err != nil {
		return fmt.Errorf("manifest version %q: %w", version, err)
	}
	return nil
}

// PinDependency forces a single entry in the dependencies map, creating the
// map if needed and leaving every other entry untouched.
func (m *Manifest) PinDependency(name, spec string) {
	deps, ok := m.doc["dependencies"].(map[string]any)
	if !ok {
		deps = map[string]any{}
		m.doc["dependencies"] = deps
	}
	deps[name] = spec
}

// Dependencies returns a copy of the dependencies map with string specs.
func (m *Manifest) Dependencies() map[string]string {
	out := map[string]string{}
	deps, ok := m.doc["dependencies"].(map[string]any)
	if !ok {
		return out
	}
	for name, spec := range deps {
		if s, ok := spec.(string); ok {
			out[name] = s
		}
	}
	return out
}

// Field returns an arbitrary top-level field, for tests and callers that
// need to assert unrelated fields survive patching.
func (m *Manifest) Field(key string) (any, bool) {
	value, ok := m.doc[key]
	return value, ok
}
