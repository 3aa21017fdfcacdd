package render

import "strings"

const (
	nbsp = "&nbsp;"
	// wordSeparator sits between word spans in the generated markup.
	wordSeparator = "\n            "
)

// WrapText splits s on whitespace and wraps every escaped word in a
// nowrap span. Every word but the last carries a trailing &nbsp;.
// Text without words yields "".
func WrapText(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for i, word := range words {
		if i > 0 {
			b.WriteString(wordSeparator)
		}
		b.WriteString(`<span style="white-space: nowrap;">`)
		b.WriteString(EscapeHTML(word))
		if i < len(words)-1 {
			b.WriteString(nbsp)
		}
		b.WriteString("</span>")
	}
	return b.String()
}
