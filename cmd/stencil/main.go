// Where: cmd/stencil/main.go
// What: CLI entrypoint.
// Why: Run the scaffold flow with real terminal and filesystem dependencies.
package main

import (
	"io/fs"
	"os"

	"github.com/poruru-code/stencil/assets"
	"github.com/poruru-code/stencil/internal/app"
	"github.com/poruru-code/stencil/internal/interaction"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}

// buildDependencies constructs the runtime dependencies for the CLI:
// terminal prompts, the embedded template trees, and real stdin for TTY
// detection.
func buildDependencies() app.Dependencies {
	templates, err := fs.Sub(assets.TemplatesFS, "templates")
	if err != nil {
		// Falls back to the minimal build behavior (manifest-only scaffold).
		templates = nil
	}

	return app.Dependencies{
		Out:       os.Stdout,
		Prompter:  interaction.HuhPrompter{},
		Templates: templates,
		Stdin:     os.Stdin,
	}
}
