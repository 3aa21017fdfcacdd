package sheetcards

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var xlsFixture = filepath.Join("parser", "testdata", "people.xls")

func TestReadXLS(t *testing.T) {
	sheet, err := Read(xlsFixture, DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if sheet.BookName != "people.xls" {
		t.Errorf("Expected book people.xls, got %q", sheet.BookName)
	}
	if sheet.SheetName != "Сотрудники" {
		t.Errorf("Expected sheet Сотрудники, got %q", sheet.SheetName)
	}
	if len(sheet.Records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(sheet.Records))
	}

	header := []string{"Name", "Age", "City"}
	expected := [][]string{
		{"Alice", "30", "Kazan"},
		{"", "41", "Moscow"},
		{"", "", ""},
		{"Иван", "25", "Omsk"},
	}
	for i, rec := range sheet.Records {
		if labels := rec.Labels(); !reflect.DeepEqual(labels, header) {
			t.Errorf("record %d: labels = %v, expected %v", i, labels, header)
		}
		for j, label := range header {
			if value, _ := rec.Get(label); value != expected[i][j] {
				t.Errorf("record %d: %s = %q, expected %q", i, label, value, expected[i][j])
			}
		}
	}
}

func TestConvertXLS(t *testing.T) {
	output := filepath.Join(t.TempDir(), "people.html")

	result, err := Convert(xlsFixture, output, DefaultOptions())
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if result.Blocks != 4 {
		t.Errorf("Expected 4 blocks, got %d", result.Blocks)
	}

	doc := readOutput(t, output)
	if got := countSections(t, doc); got != 4 {
		t.Errorf("Expected 4 sections, got %d", got)
	}
	if !strings.Contains(doc, "people.xls") {
		t.Error("document does not name the source workbook")
	}
}
