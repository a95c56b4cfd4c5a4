// Where: internal/registry/registry.go
// What: Static template registry.
// Why: Single source of truth for template identifiers and labels.
package registry

// Template names a starting-point project structure a user can select.
// Presentation concerns (colors) live in the ui package, keyed by ID.
type Template struct {
	ID    string
	Label string
}

var templates = []Template{
	{ID: "vanilla", Label: "Vanilla"},
	{ID: "vanilla-ts", Label: "Vanilla + TypeScript"},
	{ID: "vue", Label: "Vue"},
	{ID: "vue-ts", Label: "Vue + TypeScript"},
	{ID: "react", Label: "React"},
	{ID: "react-ts", Label: "React + TypeScript"},
	{ID: "svelte", Label: "Svelte"},
	{ID: "svelte-ts", Label: "Svelte + TypeScript"},
}

// All returns the registered templates in registration order.
func All() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Lookup finds a template by exact, case-sensitive identifier.
func Lookup(id string) (Template, bool) {
	for _, tpl := range templates {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}

// IDs returns the registered identifiers in registration order.
func IDs() []string {
	ids := make([]string, len(templates))
	for i, tpl := range templates {
		ids[i] = tpl.ID
	}
	return ids
}
