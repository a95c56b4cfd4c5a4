// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Surface build-time VCS state in the usage banner.
package version

import (
	"fmt"
	"runtime/debug"
)

// Release is the semantic version stamped at release time via ldflags.
var Release = "0.4.0"

// GetVersion returns the release plus the VCS revision derived from build
// info, appending "(dirty)" when the tree was modified. Falls back to the
// bare release string when build info is unavailable.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Release
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return Release
	}

	if modified {
		return fmt.Sprintf("%s+%s (dirty)", Release, revision)
	}
	return fmt.Sprintf("%s+%s", Release, revision)
}
