package rendering

import "strings"

// EscapeHTML escapes text for use in element content and double-quoted
// attribute values. Special characters: & < > " '
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	if !strings.ContainsAny(text, `&<>"'`) {
		return text
	}

	var result strings.Builder
	result.Grow(len(text) + 16)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&#34;")
		case '\'':
			result.WriteString("&#39;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
