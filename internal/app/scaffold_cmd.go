// Where: internal/app/scaffold_cmd.go
// What: The scaffold command handler.
// Why: Bridge the decision flow and the materializer, owning console output.
package app

import (
	"fmt"
	"io"

	"github.com/poruru-code/stencil/internal/flow"
	"github.com/poruru-code/stencil/internal/scaffold"
	"github.com/poruru-code/stencil/internal/ui"
)

func runScaffold(opts flow.Options, deps Dependencies, console *ui.Console, out io.Writer) int {
	dec, err := flow.Run(opts, deps.Prompter, deps.Probe)
	if err != nil {
		return exitWithError(out, err)
	}

	if dec.Mode == flow.ModeCancelled {
		if !dec.Silent {
			fmt.Fprintln(out, "✖ Operation cancelled")
		}
		return 0
	}

	if err := scaffold.Materialize(dec, deps.Templates, console); err != nil {
		return exitWithError(out, err)
	}

	if dec.Mode == flow.ModeCreate || dec.Mode == flow.ModeOverwrite {
		console.Success("Done. Now run:")
		if dec.Dir != "." {
			console.Item(fmt.Sprintf("cd %s", dec.Dir))
		}
		console.Item("npm install")
		console.Item("npm run dev")
	}
	return 0
}
