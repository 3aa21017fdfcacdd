package sheetcards

import (
	"path/filepath"

	"github.com/ukaji3/sheetcards-go/pkg/sheetcards/models"
	"github.com/ukaji3/sheetcards-go/pkg/sheetcards/parser"
)

// Read reads the first sheet of the spreadsheet at path into records.
// Any failure to open or parse the file is returned as *WorkbookError.
func Read(path string, opts Options) (*models.Sheet, error) {
	format, err := parser.DetectFormat(path)
	if err != nil {
		return nil, &WorkbookError{Path: path, Err: err}
	}

	var grid *parser.Grid
	switch format {
	case parser.FormatXLS:
		grid, err = parser.ReadXLS(path, opts.Encoding)
	case parser.FormatCSV, parser.FormatTSV:
		grid, err = parser.ReadCSV(path, format, parser.CSVOptions{
			Comma:    opts.Delimiter,
			Encoding: opts.Encoding,
		})
	default:
		grid, err = parser.ReadXLSX(path)
	}
	if err != nil {
		return nil, &WorkbookError{Path: path, Err: err}
	}

	return &models.Sheet{
		BookName:  filepath.Base(path),
		SheetName: grid.SheetName,
		Records:   parser.BuildRecords(parser.CropToData(grid.Rows)),
	}, nil
}
