package render

import (
	"strconv"
	"strings"

	"github.com/ukaji3/sheetcards-go/pkg/sheetcards/models"
)

// DefaultTitle is the page title used when none is configured.
const DefaultTitle = "Данные из таблицы"

const emptyContent = `  <p class="data-page__empty">В таблице нет данных.</p>`

// Config holds the document-level settings of the renderer.
type Config struct {
	// Title is the page heading. Empty selects DefaultTitle.
	Title string
}

// DefaultConfig returns the renderer configuration with the default title.
func DefaultConfig() Config {
	return Config{Title: DefaultTitle}
}

func (c Config) title() string {
	if c.Title == "" {
		return DefaultTitle
	}
	return c.Title
}

// BlockLabel returns the heading of the card for the record at index (0-based).
func BlockLabel(index int) string {
	return "Строка " + strconv.Itoa(index+1)
}

// Render builds the complete HTML document for records.
// sourceName is shown in the page header and the document title; an empty
// sourceName falls back to the configured title.
func Render(records []*models.Record, sourceName string, cfg Config) string {
	title := cfg.title()
	if sourceName == "" {
		sourceName = title
	}

	var content string
	if len(records) > 0 {
		blocks := make([]string, len(records))
		for i, rec := range records {
			blocks[i] = renderBlock(rec, i)
		}
		content = strings.Join(blocks, "\n\n")
	} else {
		content = emptyContent
	}

	source := EscapeHTML(sourceName)
	escapedTitle := EscapeHTML(title)

	var b strings.Builder
	b.WriteString(`<!doctype html>
<html lang="ru">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>`)
	b.WriteString(source)
	b.WriteString(" — ")
	b.WriteString(escapedTitle)
	b.WriteString("</title>\n  <style>")
	b.WriteString(stylesheet)
	b.WriteString(`  </style>
</head>
<body>
  <main class="data-page">
    <header class="data-page__header">
      <h1 class="data-page__title">`)
	b.WriteString(escapedTitle)
	b.WriteString(`</h1>
      <p class="data-page__meta">Источник: `)
	b.WriteString(source)
	b.WriteString("</p>\n    </header>\n")
	b.WriteString(content)
	b.WriteString(`
  </main>
</body>
</html>`)

	return b.String()
}

func renderBlock(rec *models.Record, index int) string {
	fields := rec.Fields()
	rendered := make([]string, len(fields))
	for i, f := range fields {
		rendered[i] = renderField(f.Label, f.Value)
	}

	label := BlockLabel(index)
	var b strings.Builder
	b.WriteString(`  <section class="data-block" aria-label="`)
	b.WriteString(label)
	b.WriteString("\">\n    <header class=\"data-block__title\">")
	b.WriteString(label)
	b.WriteString("</header>\n    <dl class=\"data-block__fields\">\n")
	b.WriteString(strings.Join(rendered, "\n"))
	b.WriteString("\n    </dl>\n  </section>")
	return b.String()
}

func renderField(label, value string) string {
	wrapped := WrapText(value)
	if wrapped == "" {
		wrapped = nbsp
	}

	var b strings.Builder
	b.WriteString(`      <div class="data-block__field">
        <dt class="data-block__label">`)
	b.WriteString(EscapeHTML(label))
	b.WriteString(`</dt>
        <dd class="data-block__value">
          <p style="margin: 0; padding: 0; font-family: Helvetica, Arial, sans-serif; font-size: 19px; line-height: 22px; color: #333f48; font-weight: 400;">
            `)
	b.WriteString(wrapped)
	b.WriteString(`
          </p>
        </dd>
      </div>`)
	return b.String()
}
