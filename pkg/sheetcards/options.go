// Package sheetcards converts the first sheet of a spreadsheet into a static
// HTML page that shows every row as a card.
package sheetcards

import "github.com/ukaji3/sheetcards-go/pkg/sheetcards/render"

// Options configures reading and rendering.
type Options struct {
	// Title is the page heading. Empty selects render.DefaultTitle.
	Title string
	// Encoding is the text encoding of CSV input and the charset of legacy
	// xls workbooks. Empty means UTF-8.
	Encoding string
	// Delimiter is the CSV field delimiter. Zero selects ',' (tab for .tsv).
	Delimiter rune
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Title: render.DefaultTitle,
	}
}

// RenderConfig returns the renderer configuration derived from the options.
func (o Options) RenderConfig() render.Config {
	return render.Config{Title: o.Title}
}
