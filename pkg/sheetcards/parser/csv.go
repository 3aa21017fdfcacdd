package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVOptions configures delimited text parsing.
type CSVOptions struct {
	// Comma is the field delimiter. Zero selects ',' (or '\t' for FormatTSV).
	Comma rune
	// Encoding is a WHATWG encoding label such as "windows-1251".
	// Empty means UTF-8. A byte order mark always takes precedence.
	Encoding string
}

// ReadCSV reads a delimited text file as a single sheet named after the file.
func ReadCSV(path string, format Format, opts CSVOptions) (*Grid, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := unicode.BOMOverride(enc.NewDecoder())
	r := csv.NewReader(transform.NewReader(f, decoder))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.Comma = opts.Comma
	if r.Comma == 0 {
		r.Comma = ','
		if format == FormatTSV {
			r.Comma = '\t'
		}
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Grid{SheetName: name, Rows: rows}, nil
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	if label == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return enc, nil
}
