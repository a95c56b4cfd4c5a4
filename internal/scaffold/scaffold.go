// Where: internal/scaffold/scaffold.go
// What: Materialize a resolved decision onto the filesystem.
// Why: Keep all file writes behind the decision record so cancellation
// guarantees zero mutation.
package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/poruru-code/stencil/internal/flow"
	"github.com/poruru-code/stencil/internal/fsprobe"
	"github.com/poruru-code/stencil/internal/manifest"
	"github.com/poruru-code/stencil/internal/ui"
)

// templateData feeds .tmpl files inside template trees.
type templateData struct {
	ProjectName string
	PackageName string
}

// Materialize applies a completed decision. templates is the embedded
// template root (one template-<id> directory per registered template); a
// nil FS degrades to synthesizing a minimal manifest. Cancelled decisions
// are a no-op.
func Materialize(dec flow.Decision, templates fs.FS, console *ui.Console) error {
	switch dec.Mode {
	case flow.ModeCancelled:
		return nil
	case flow.ModeUpdate:
		return update(dec, console)
	case flow.ModeOverwrite:
		if err := fsprobe.Clear(dec.Dir); err != nil {
			return fmt.Errorf("clear target: %w", err)
		}
		return create(dec, templates, console)
	case flow.ModeCreate:
		return create(dec, templates, console)
	}
	return fmt.Errorf("unknown mode %v", dec.Mode)
}

func update(dec flow.Decision, console *ui.Console) error {
	path := filepath.Join(dec.Dir, manifest.FileName)
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	if err := m.CheckVersion(); err != nil {
		console.Warn(err.Error())
	}

	m.PinDependency(manifest.PinnedDependency, manifest.PinnedVersion)
	if err := m.Save(path); err != nil {
		return err
	}

	console.Success(fmt.Sprintf("Updated %s in %s", manifest.PinnedDependency, path))
	return nil
}

func create(dec flow.Decision, templates fs.FS, console *ui.Console) error {
	if err := os.MkdirAll(dec.Dir, 0o755); err != nil {
		return fmt.Errorf("create target: %w", err)
	}

	console.Info(fmt.Sprintf("Scaffolding project in %s...", dec.Dir))

	root := templateRoot(templates, dec.TemplateID)
	if root == nil {
		m := manifest.New(dec.PackageName)
		m.PinDependency(manifest.PinnedDependency, manifest.PinnedVersion)
		return m.Save(filepath.Join(dec.Dir, manifest.FileName))
	}

	data := templateData{
		ProjectName: projectNameFor(dec.Dir),
		PackageName: dec.PackageName,
	}
	if err := copyTree(root, dec.Dir, data); err != nil {
		return err
	}

	path := filepath.Join(dec.Dir, manifest.FileName)
	m, err := manifest.Load(path)
	if err != nil {
		return fmt.Errorf("template manifest: %w", err)
	}
	m.SetName(dec.PackageName)
	m.PinDependency(manifest.PinnedDependency, manifest.PinnedVersion)
	return m.Save(path)
}

// templateRoot returns the sub-filesystem for the chosen template, or nil
// when no on-disk tree is available (minimal build).
func templateRoot(templates fs.FS, id string) fs.FS {
	if templates == nil || id == "" {
		return nil
	}
	sub, err := fs.Sub(templates, "template-"+id)
	if err != nil {
		return nil
	}
	if _, err := fs.Stat(sub, "."); err != nil {
		return nil
	}
	return sub
}

func copyTree(root fs.FS, dest string, data templateData) error {
	return fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}

		target := filepath.Join(dest, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		payload, err := fs.ReadFile(root, path)
		if err != nil {
			return fmt.Errorf("read template file %s: %w", path, err)
		}

		// Dotfiles cannot ship under their real names in the bundle.
		if d.Name() == "_gitignore" {
			target = filepath.Join(filepath.Dir(target), ".gitignore")
		}

		if strings.HasSuffix(d.Name(), ".tmpl") {
			rendered, err := render(path, payload, data)
			if err != nil {
				return err
			}
			payload = rendered
			target = strings.TrimSuffix(target, ".tmpl")
		}

		return os.WriteFile(target, payload, 0o644)
	})
}

func render(name string, payload []byte, data templateData) ([]byte, error) {
	tpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(payload))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// projectNameFor derives the human project name from the target directory.
func projectNameFor(dir string) string {
	if dir == "." {
		if abs, err := filepath.Abs(dir); err == nil {
			return filepath.Base(abs)
		}
	}
	return filepath.Base(dir)
}
