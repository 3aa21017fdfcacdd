package models

// Sheet holds the records read from the first sheet of a workbook.
type Sheet struct {
	// BookName is the workbook file name (no path).
	BookName string
	// SheetName is the name of the sheet the records come from.
	SheetName string
	// Records contains one record per data row, in sheet order.
	Records []*Record
}
