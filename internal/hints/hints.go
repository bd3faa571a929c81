// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForPopplerNotFound returns hints for a missing pdftoppm toolchain.
func ForPopplerNotFound() string {
	return formatHints([]string{
		"install poppler-utils (apt install poppler-utils / brew install poppler)",
		"or use --mode placeholder to build without score images",
	})
}

// ForFetchFailure returns a hint for network fetch errors.
func ForFetchFailure() string {
	return format("check network access, or use --mode placeholder to build offline")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-workbook") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
