package comment

import (
	"strings"
	"unicode"
)

// TrimTrailingWhitespace removes trailing Unicode whitespace from s.
func TrimTrailingWhitespace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
