package applescript

import "strings"

// Escape prepares a value for interpolation into a double-quoted
// AppleScript string literal. Backslashes are doubled before quotes are
// escaped; reversing the order corrupts values containing both
// characters.
func Escape(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}
