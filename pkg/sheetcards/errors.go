package sheetcards

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetcards-go/pkg/sheetcards/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoSheets indicates the workbook does not contain any sheet.
var ErrNoSheets = parser.ErrNoSheets

// ErrUnsupportedFormat indicates the input is not a recognised spreadsheet.
var ErrUnsupportedFormat = parser.ErrUnsupportedFormat

// FileNotFoundError reports a missing input file. It matches ErrFileNotFound.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("файл %s не найден", e.Path)
}

// Is reports whether target is ErrFileNotFound.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// WorkbookError represents a failure to open or parse a workbook.
type WorkbookError struct {
	Path string
	Err  error
}

func (e *WorkbookError) Error() string {
	return fmt.Sprintf("не удалось прочитать книгу %s: %v", e.Path, e.Err)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}

// WriteError represents a failure to write the output document.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("не удалось записать файл %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
