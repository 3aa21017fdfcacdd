// Package render turns records into a standalone HTML document that shows
// every record as a card.
//
// Rendering is a pure function of its inputs: the same records, source name
// and Config always produce the same bytes.
package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces & < > " ' with their entities. It is safe for both
// element content and quoted attribute values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
