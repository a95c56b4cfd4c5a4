// Where: internal/flow/flow.go
// What: The interactive decision flow for scaffolding.
// Why: Resolve directory, package name, template, and mode from CLI arguments
// and sequential answers, with every skip rule in one inspectable table.
package flow

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poruru-code/stencil/internal/interaction"
	"github.com/poruru-code/stencil/internal/naming"
	"github.com/poruru-code/stencil/internal/registry"
)

// DefaultProjectName is the placeholder offered by the project name prompt.
const DefaultProjectName = "stencil-project"

// Mode is the resolved operation of a completed flow.
type Mode int

const (
	ModeCreate Mode = iota
	ModeOverwrite
	ModeUpdate
	ModeCancelled
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeOverwrite:
		return "overwrite"
	case ModeUpdate:
		return "update"
	case ModeCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Overwrite prompt choices.
const (
	ChoiceRemove = "remove"
	ChoiceCancel = "cancel"
	ChoiceUpdate = "update"
)

// Options carries everything known before the first prompt.
type Options struct {
	// TargetDir is the normalized positional argument, "" when absent.
	TargetDir string
	// TemplateFlag is the raw -t/--template value, "" when absent.
	TemplateFlag string
	// Update is the -u/--update flag.
	Update bool
	// DefaultTemplate seeds the template cursor; it never bypasses the prompt.
	DefaultTemplate string
	// Cwd names the current directory for deriving a project name from ".".
	Cwd string
	// Interactive reports whether prompts can run at all.
	Interactive bool
}

// Decision is the fully resolved outcome consumed by the materializer.
type Decision struct {
	Dir         string
	PackageName string
	TemplateID  string // empty in update mode
	Mode        Mode
	// Silent marks a cancellation that must produce no output (the
	// update-mode short-circuit on a missing target).
	Silent bool
}

// Probe reports filesystem facts the skip rules depend on.
type Probe interface {
	Exists(path string) bool
	IsEffectivelyEmpty(path string) bool
}

// errCancelled aborts the remaining steps; Run converts it into a
// ModeCancelled decision rather than an error.
var errCancelled = errors.New("flow cancelled")

type state struct {
	opts     Options
	prompter interaction.Prompter
	probe    Probe

	projectName string
	overwrite   string
	packageName string
	templateID  string
}

// step is one entry of the flow's transition table. A step either runs,
// contributing at most one answer, or is skipped because prior answers or
// CLI arguments already satisfy it.
type step struct {
	name string
	skip func(*state) bool
	run  func(*state) error
}

func steps() []step {
	return []step{
		{
			name: "project-name",
			skip: func(s *state) bool { return s.opts.TargetDir != "" || s.opts.Update },
			run:  runProjectName,
		},
		{
			name: "overwrite",
			skip: func(s *state) bool {
				dir := s.targetDir()
				return !s.probe.Exists(dir) || s.probe.IsEffectivelyEmpty(dir)
			},
			run: runOverwrite,
		},
		{
			name: "cancellation-gate",
			skip: func(s *state) bool { return s.overwrite != ChoiceCancel },
			run:  func(*state) error { return errCancelled },
		},
		{
			name: "package-name",
			skip: func(s *state) bool {
				return naming.IsValidPackageName(s.derivedProjectName()) || s.updateMode()
			},
			run: runPackageName,
		},
		{
			name: "template",
			skip: func(s *state) bool {
				if s.updateMode() {
					return true
				}
				_, registered := registry.Lookup(s.opts.TemplateFlag)
				return registered
			},
			run: runTemplate,
		},
	}
}

// Run executes the flow. Cancellation is a value: the returned Decision has
// ModeCancelled and err is nil. Errors are reserved for prompt-layer
// failures that are not user aborts.
func Run(opts Options, prompter interaction.Prompter, probe Probe) (Decision, error) {
	// Nothing to update: terminate silently, before any prompting.
	if opts.Update && opts.TargetDir != "" && opts.TargetDir != "." && !probe.Exists(opts.TargetDir) {
		return Decision{Mode: ModeCancelled, Silent: true}, nil
	}

	s := &state{opts: opts, prompter: prompter, probe: probe}
	for _, st := range steps() {
		if st.skip(s) {
			continue
		}
		if err := st.run(s); err != nil {
			if errors.Is(err, errCancelled) || errors.Is(err, interaction.ErrAborted) {
				return Decision{Mode: ModeCancelled}, nil
			}
			return Decision{}, fmt.Errorf("step %s: %w", st.name, err)
		}
	}

	return s.decision(), nil
}

// targetDir resolves the working directory from the CLI argument or the
// project name answer. Update mode with no argument targets ".".
func (s *state) targetDir() string {
	if s.opts.TargetDir != "" {
		return s.opts.TargetDir
	}
	if s.projectName != "" {
		return s.projectName
	}
	if s.opts.Update {
		return "."
	}
	return DefaultProjectName
}

// derivedProjectName is the name the package-name default is computed from:
// the directory basename, with "." resolving through the current directory.
func (s *state) derivedProjectName() string {
	dir := s.targetDir()
	if dir == "." {
		return filepath.Base(s.opts.Cwd)
	}
	return filepath.Base(dir)
}

// updateMode reports whether the flow has already resolved to update:
// either the flag was set (and no overwrite answer redirected it), or the
// overwrite prompt chose "update files".
func (s *state) updateMode() bool {
	if s.overwrite == ChoiceUpdate {
		return true
	}
	return s.opts.Update && s.overwrite == ""
}

func (s *state) decision() Decision {
	dir := s.targetDir()

	if s.updateMode() {
		return Decision{Dir: dir, Mode: ModeUpdate}
	}

	mode := ModeCreate
	if s.overwrite == ChoiceRemove {
		mode = ModeOverwrite
	}

	pkg := s.packageName
	if pkg == "" {
		pkg = s.derivedProjectName()
		if !naming.IsValidPackageName(pkg) {
			pkg = naming.ToValidPackageName(pkg)
		}
	}

	tpl := s.templateID
	if tpl == "" {
		tpl = s.opts.TemplateFlag
	}

	return Decision{Dir: dir, PackageName: pkg, TemplateID: tpl, Mode: mode}
}

func (s *state) prompt() (interaction.Prompter, error) {
	if !s.opts.Interactive || s.prompter == nil {
		return nil, interaction.ErrAborted
	}
	return s.prompter, nil
}

func runProjectName(s *state) error {
	prompter, err := s.prompt()
	if err != nil {
		return err
	}

	answer, err := prompter.Input("Project name:", DefaultProjectName, nil)
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) == "" {
		answer = DefaultProjectName
	}
	s.projectName = naming.NormalizeTargetDir(answer)
	return nil
}

func runOverwrite(s *state) error {
	prompter, err := s.prompt()
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Target directory %q is not empty. Please choose how to proceed:", s.targetDir())
	options := []interaction.SelectOption{
		{Label: "Remove existing files and continue", Value: ChoiceRemove},
		{Label: "Cancel operation", Value: ChoiceCancel},
		{Label: "Update existing project", Value: ChoiceUpdate},
	}

	answer, err := prompter.Select(title, options, 0)
	if err != nil {
		return err
	}
	s.overwrite = answer
	return nil
}

func runPackageName(s *state) error {
	prompter, err := s.prompt()
	if err != nil {
		return err
	}

	fallback := naming.ToValidPackageName(s.derivedProjectName())
	validate := func(value string) error {
		if strings.TrimSpace(value) == "" {
			if fallback == "" {
				return errors.New("package name is required")
			}
			return nil
		}
		if !naming.IsValidPackageName(value) {
			return errors.New("invalid package.json name")
		}
		return nil
	}

	answer, err := prompter.Input("Package name:", fallback, validate)
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) == "" {
		answer = fallback
	}
	if !naming.IsValidPackageName(answer) {
		// Scripted prompters may ignore the validate hook.
		return fmt.Errorf("invalid package name %q", answer)
	}
	s.packageName = answer
	return nil
}

func runTemplate(s *state) error {
	prompter, err := s.prompt()
	if err != nil {
		return err
	}

	title := "Select a template:"
	if s.opts.TemplateFlag != "" {
		title = fmt.Sprintf("%q isn't a valid template. Please choose from below:", s.opts.TemplateFlag)
	}

	all := registry.All()
	options := make([]interaction.SelectOption, len(all))
	initial := 0
	for i, tpl := range all {
		options[i] = interaction.SelectOption{Label: tpl.Label, Value: tpl.ID}
		if tpl.ID == s.opts.DefaultTemplate {
			initial = i
		}
	}

	answer, err := prompter.Select(title, options, initial)
	if err != nil {
		return err
	}
	s.templateID = answer
	return nil
}
