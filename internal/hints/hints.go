// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and the user config location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-img2pdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoImages returns hints when a directory holds no usable images.
func ForNoImages(extensions []string) string {
	return format("only " + strings.Join(extensions, ", ") + " files are picked up; subdirectories are skipped")
}

// ForPageSize lists the named page sizes.
func ForPageSize(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass --width and --height in points")
}

// ForImageDecode returns hints for images that cannot be decoded.
func ForImageDecode() string {
	return format("supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF")
}

// ForChoices lists the accepted values of an enumerated option.
func ForChoices(option string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return format(option + " accepts: " + strings.Join(values, ", "))
}

func format(hint string) string {
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

// Join merges several hint strings, dropping empty ones.
func Join(parts ...string) string {
	var texts []string
	for _, p := range parts {
		if t := strings.TrimPrefix(p, "\n  hint: "); t != "" {
			texts = append(texts, t)
		}
	}
	return formatHints(texts)
}
