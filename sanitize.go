package renamify

import (
	"regexp"
	"strings"
)

// maxFilenameLen bounds sanitized names well below common filesystem limits.
const maxFilenameLen = 200

var illegalChars = regexp.MustCompile(`[\\/*?"<>|]`)

// SanitizeFilename maps an arbitrary title to a filesystem-legal name.
// Colons become spaces rather than disappearing, so adjacent words stay
// separated. Returns "" when the title has no usable content.
func SanitizeFilename(title string) string {
	if title == "" {
		return ""
	}
	title = strings.ReplaceAll(title, ":", " ")
	title = strings.Join(strings.Fields(title), " ")
	cleaned := illegalChars.ReplaceAllString(title, "_")
	// Some extraction paths append a page marker that ends up as "_1".
	cleaned = strings.TrimSuffix(cleaned, "_1")
	if runes := []rune(cleaned); len(runes) > maxFilenameLen {
		cleaned = string(runes[:maxFilenameLen])
	}
	return cleaned
}
