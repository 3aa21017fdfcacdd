package parser

import "errors"

// ErrNoSheets indicates the workbook does not contain any sheet.
var ErrNoSheets = errors.New("в книге отсутствуют листы")

// ErrUnsupportedFormat indicates the file is not a recognised spreadsheet.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
