// Where: internal/naming/naming.go
// What: Target directory and package name normalization.
// Why: Keep prompt defaults and manifest names valid without touching I/O.
package naming

import (
	"regexp"
	"strings"
)

var (
	packageNamePattern = regexp.MustCompile(`^(?:@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)
	whitespaceRun      = regexp.MustCompile(`\s+`)
	invalidRun         = regexp.MustCompile(`[^a-z0-9-~]+`)
)

// NormalizeTargetDir trims surrounding whitespace and strips trailing path
// separators from a raw directory argument. Empty input stays empty.
func NormalizeTargetDir(raw string) string {
	trimmed := strings.TrimSpace(raw)
	return strings.TrimRight(trimmed, "/\\")
}

// IsValidPackageName reports whether name satisfies the manifest naming
// grammar: optional @scope/ prefix, lowercase alphanumerics plus -._~ in
// both segments, no leading dot or underscore.
func IsValidPackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}

// ToValidPackageName derives a valid manifest name from an arbitrary project
// name. Whitespace runs collapse to a single dash, one leading dot or
// underscore is stripped, and any run of disallowed characters becomes a
// single dash. An input that strips down to nothing yields "".
func ToValidPackageName(name string) string {
	result := strings.ToLower(strings.TrimSpace(name))
	result = whitespaceRun.ReplaceAllString(result, "-")
	if strings.HasPrefix(result, ".") || strings.HasPrefix(result, "_") {
		result = result[1:]
	}
	result = invalidRun.ReplaceAllString(result, "-")
	return result
}
