package parser

import (
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of an Office Open XML workbook.
// Cells are read raw and converted by formatCell so that dates, numbers
// and booleans get a stable textual form independent of the cell's
// display format.
func ReadXLSX(path string) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	conv := &cellConverter{f: f, sheet: sheetName, date1904: date1904, styles: make(map[int]bool)}
	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				continue
			}
			row[colIdx] = conv.convert(cellName, raw)
		}
	}

	return &Grid{SheetName: sheetName, Rows: rows}, nil
}

// cellConverter turns raw xlsx cell values into display text.
type cellConverter struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	// styles caches whether a style index carries a date number format.
	styles   map[int]bool
}

func (c *cellConverter) convert(cellName, raw string) string {
	cellType, err := c.f.GetCellType(c.sheet, cellName)
	if err != nil {
		return raw
	}

	switch cellType {
	case excelize.CellTypeBool:
		return formatBool(raw)
	case excelize.CellTypeDate:
		return formatISODate(raw)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if c.isDateStyled(cellName) {
			if s, ok := formatSerialDate(raw, c.date1904); ok {
				return s
			}
		}
		return formatNumber(raw)
	}
	return raw
}

func (c *cellConverter) isDateStyled(cellName string) bool {
	styleID, err := c.f.GetCellStyle(c.sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := c.styles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := c.f.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	c.styles[styleID] = isDate
	return isDate
}
