// Package parser reads the first sheet of a spreadsheet file into a grid of
// cell texts and turns that grid into records.
package parser

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a spreadsheet container format.
type Format string

const (
	// FormatXLSX is the Office Open XML workbook family (xlsx, xlsm, xltx, xltm).
	FormatXLSX Format = "xlsx"
	// FormatXLS is the legacy BIFF workbook stored in an OLE2 compound file.
	FormatXLS Format = "xls"
	// FormatCSV is comma-separated text.
	FormatCSV Format = "csv"
	// FormatTSV is tab-separated text.
	FormatTSV Format = "tsv"
)

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat determines the format of the file at path.
// The file signature wins over the extension; text formats are recognised
// by extension only.
func DetectFormat(path string) (Format, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, len(oleMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return FormatXLSX, nil
	case bytes.HasPrefix(head, oleMagic):
		return FormatXLS, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	}

	return "", ErrUnsupportedFormat
}
