// Where: internal/interaction/selector.go
// What: Prompter implementation using the huh library.
// Why: Keyboard-driven input and selection for the scaffold flow.
package interaction

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title, placeholder string, validate func(string) error, input *string) error {
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(input)
	if validate != nil {
		field = field.Validate(validate)
	}
	return field.Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, placeholder string, validate func(string) error) (string, error) {
	var input string
	if err := runInputPrompt(title, placeholder, validate, &input); err != nil {
		return "", wrapPromptErr("prompt input", err)
	}
	return input, nil
}

func (p HuhPrompter) Select(title string, options []SelectOption, initial int) (string, error) {
	if len(options) == 0 {
		return "", nil
	}
	if initial < 0 || initial >= len(options) {
		initial = 0
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	// Presetting the bound value positions the cursor on the initial option.
	selected := options[initial].Value
	if err := runSelectPrompt(title, huhOptions, &selected); err != nil {
		return "", wrapPromptErr("prompt select", err)
	}
	return selected, nil
}

// wrapPromptErr maps user interrupts onto ErrAborted and keeps other
// terminal failures attributable to the prompt layer.
func wrapPromptErr(op string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return fmt.Errorf("%s: %w", op, err)
}
