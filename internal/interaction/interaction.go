// Where: internal/interaction/interaction.go
// What: Interactive prompt primitives and TTY detection.
// Why: Keep the flow engine free of terminal concerns.
package interaction

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrAborted signals that the user interrupted a prompt (Ctrl-C, EOF).
// The flow treats it identically to an explicit cancel choice.
var ErrAborted = errors.New("prompt aborted")

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user input and selection.
// Validate may be nil; when set, the prompt refuses to resolve until the
// entered value passes. initial indexes into options and positions the
// cursor; out-of-range values fall back to the first option.
type Prompter interface {
	Input(title, placeholder string, validate func(string) error) (string, error)
	Select(title string, options []SelectOption, initial int) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
