package parser

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
)

// DefaultCharset is the charset used for legacy workbooks that do not
// declare strings as UTF-16.
const DefaultCharset = "utf-8"

// ReadXLS reads the first sheet of a legacy BIFF workbook.
// Cell texts are the ones produced by the xls library, including its own
// rendering of date-formatted cells.
func ReadXLS(path, charset string) (grid *Grid, err error) {
	if charset == "" {
		charset = DefaultCharset
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// The BIFF decoder panics on some malformed records.
	defer func() {
		if r := recover(); r != nil {
			grid = nil
			err = fmt.Errorf("malformed xls file: %v", r)
		}
	}()

	wb, err := xls.OpenReader(f, charset)
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheets
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoSheets
	}

	sheetRows := make([]*xls.Row, int(sheet.MaxRow)+1)
	width := 0
	for i := range sheetRows {
		row := sheetRow(sheet, i)
		if row != nil && row.LastCol() > width {
			width = row.LastCol()
		}
		sheetRows[i] = row
	}

	// Rows without a ROW record report no columns, so every row is read
	// up to the widest one.
	rows := make([][]string, 0, len(sheetRows))
	for _, row := range sheetRows {
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cols := make([]string, width)
		for colIdx := range cols {
			cols[colIdx] = row.Col(colIdx)
		}
		rows = append(rows, cols)
	}

	return &Grid{SheetName: sheet.Name, Rows: rows}, nil
}

// sheetRow returns nil for rows that have neither a ROW record nor cells.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}
