// Where: internal/app/help.go
// What: Usage banner with the colored template list.
// Why: Kong's generated help cannot render per-template colors.
package app

import (
	"fmt"
	"io"

	"github.com/poruru-code/stencil/internal/registry"
	"github.com/poruru-code/stencil/internal/ui"
	"github.com/poruru-code/stencil/internal/version"
)

func printUsage(out io.Writer) {
	fmt.Fprintf(out, "%s %s\n\n", ui.Accent.Render("stencil"), version.GetVersion())
	fmt.Fprintln(out, "Usage: stencil [options] [directory]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Scaffold a new project from a named template, or update an existing one.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fmt.Fprintln(out, "  -t, --template NAME   Scaffold from template NAME without prompting")
	fmt.Fprintln(out, "  -u, --update          Update an existing scaffolded directory")
	fmt.Fprintln(out, "  -V, --version         Show version information")
	fmt.Fprintln(out, "  -h, --help            Show this help")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Templates:")
	for _, tpl := range registry.All() {
		fmt.Fprintf(out, "  %s\n", ui.TemplateStyle(tpl.ID).Render(tpl.ID))
	}
}
