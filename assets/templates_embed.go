// Where: assets/templates_embed.go
// What: Embed the on-disk template trees shipped with the tool.
// Why: Scaffolding must work from a single binary with no network access.
package assets

import "embed"

// TemplatesFS holds one directory per registered template, named
// templates/template-<id>. The all: prefix keeps underscore-prefixed
// entries such as _gitignore in the bundle.
//
//go:embed all:templates
var TemplatesFS embed.FS
