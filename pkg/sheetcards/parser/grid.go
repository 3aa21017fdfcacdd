package parser

// Grid is the first sheet of a workbook as row-major cell texts.
type Grid struct {
	// SheetName is the name of the sheet the rows come from.
	SheetName string
	// Rows holds cell texts; rows may have different lengths.
	Rows [][]string
}

// CropToData trims rows to the bounding box of non-empty cells and pads
// every remaining row to the box width with empty strings.
// A grid without any non-empty cell yields nil.
func CropToData(rows [][]string) [][]string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	width := maxCol - minCol + 1
	result := make([][]string, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		cropped := make([]string, width)
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			cropped[colIdx-minCol] = row[colIdx]
		}
		result = append(result, cropped)
	}

	return result
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
