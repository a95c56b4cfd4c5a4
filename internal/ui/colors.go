// Where: internal/ui/colors.go
// What: Presentation colors for registered templates.
// Why: Keep color a rendering concern, decoupled from registry data.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	blue    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	neutral = lipgloss.NewStyle()
)

var templateStyles = map[string]lipgloss.Style{
	"vanilla":    yellow,
	"vanilla-ts": yellow,
	"vue":        green,
	"vue-ts":     green,
	"react":      cyan,
	"react-ts":   cyan,
	"svelte":     red,
	"svelte-ts":  red,
}

// TemplateStyle returns the presentation style for a template identifier.
// Unknown identifiers render unstyled.
func TemplateStyle(id string) lipgloss.Style {
	if style, ok := templateStyles[id]; ok {
		return style
	}
	return neutral
}

// Accent is the style used for usage banner highlights.
var Accent = blue
