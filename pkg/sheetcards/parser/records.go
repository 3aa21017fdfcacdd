package parser

import (
	"fmt"

	"github.com/ukaji3/sheetcards-go/pkg/sheetcards/models"
)

// ColumnLabel returns the synthetic header for a blank header cell.
// index is 0-based; the label is 1-based.
func ColumnLabel(index int) string {
	return fmt.Sprintf("Столбец %d", index+1)
}

// BuildRecords treats the first row as headers and turns every following
// row into a record. Rows are expected to be cropped by CropToData.
func BuildRecords(rows [][]string) []*models.Record {
	if len(rows) == 0 {
		return []*models.Record{}
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		if h == "" {
			h = ColumnLabel(i)
		}
		headers[i] = h
	}

	records := make([]*models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := models.NewRecord(len(headers))
		for i, h := range headers {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			rec.Set(h, value)
		}
		records = append(records, rec)
	}

	return records
}
