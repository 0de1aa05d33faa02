package email

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML entity-encodes the five characters that are significant in
// HTML text and attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
