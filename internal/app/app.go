// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/poruru-code/stencil/internal/config"
	"github.com/poruru-code/stencil/internal/flow"
	"github.com/poruru-code/stencil/internal/fsprobe"
	"github.com/poruru-code/stencil/internal/interaction"
	"github.com/poruru-code/stencil/internal/naming"
	"github.com/poruru-code/stencil/internal/ui"
	"github.com/poruru-code/stencil/internal/version"
)

// EnvDefaultTemplate seeds the template cursor, like the global config's
// default_template but per-invocation.
const EnvDefaultTemplate = "STENCIL_DEFAULT_TEMPLATE"

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing.
type Dependencies struct {
	Out        io.Writer
	Prompter   interaction.Prompter
	Probe      flow.Probe
	Templates  fs.FS
	Stdin      *os.File
	IsTerminal func(*os.File) bool
	Getwd      func() (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Dir      string `arg:"" optional:"" help:"Target directory"`
	Template string `short:"t" help:"Scaffold from template NAME without prompting"`
	Update   bool   `short:"u" help:"Update an existing scaffolded directory"`
	Version  bool   `short:"V" help:"Show version information"`
}

// diskProbe answers flow questions from the real filesystem.
type diskProbe struct{}

func (diskProbe) Exists(path string) bool             { return fsprobe.Exists(path) }
func (diskProbe) IsEffectivelyEmpty(path string) bool { return fsprobe.IsEffectivelyEmpty(path) }

// Run is the main entry point for CLI command execution. Returns 0 on
// success, help, and user cancellation; 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Probe == nil {
		deps.Probe = diskProbe{}
	}
	if deps.IsTerminal == nil {
		deps.IsTerminal = interaction.IsTerminal
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}

	// Help is handled before parsing so the template list renders with the
	// registry's colors.
	if hasHelpFlag(args) {
		printUsage(out)
		return 0
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("stencil"),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return exitWithError(out, err)
	}
	if _, err := parser.Parse(args); err != nil {
		return exitWithError(out, err)
	}

	if cli.Version {
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	// Default to .env in the current directory, as a convenience for
	// STENCIL_* overrides.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	console := ui.New(out)
	defaultTemplate := resolveDefaultTemplate(console)

	cwd, err := deps.Getwd()
	if err != nil {
		return exitWithError(out, err)
	}

	opts := flow.Options{
		TargetDir:       naming.NormalizeTargetDir(cli.Dir),
		TemplateFlag:    strings.TrimSpace(cli.Template),
		Update:          cli.Update,
		DefaultTemplate: defaultTemplate,
		Cwd:             cwd,
		Interactive:     deps.IsTerminal(deps.Stdin),
	}

	return runScaffold(opts, deps, console, out)
}

// resolveDefaultTemplate reads the template cursor seed from the
// environment, falling back to the global config. Config trouble is a
// warning only.
func resolveDefaultTemplate(console *ui.Console) string {
	if env := strings.TrimSpace(os.Getenv(EnvDefaultTemplate)); env != "" {
		return env
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		console.Warn(fmt.Sprintf("global config: %v", err))
		return ""
	}
	path, err := config.GlobalConfigPath()
	if err != nil {
		return ""
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		console.Warn(fmt.Sprintf("global config: %v", err))
		return ""
	}
	return cfg.DefaultTemplate
}

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "✗ %v\n", err)
	return 1
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}
