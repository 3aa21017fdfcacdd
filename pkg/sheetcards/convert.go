package sheetcards

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetcards-go/pkg/sheetcards/render"
)

// Result describes a finished conversion.
type Result struct {
	// InputPath is the absolute path of the spreadsheet.
	InputPath string
	// OutputPath is the absolute path of the written document.
	OutputPath string
	// SheetName is the name of the sheet that was rendered.
	SheetName string
	// Blocks is the number of rendered row cards.
	Blocks int
}

// DefaultOutputPath returns input with its extension replaced by .html.
// A leading dot of the file name does not start an extension, so
// ".data" becomes ".data.html".
func DefaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	if base := filepath.Base(input); ext == base {
		ext = ""
	}
	return strings.TrimSuffix(input, ext) + ".html"
}

// Convert reads input, renders it and writes the document to output.
// Relative paths are resolved against the working directory; an empty
// output selects DefaultOutputPath. The output file is only created once
// rendering has succeeded.
func Convert(input, output string, opts Options) (*Result, error) {
	absInput, err := filepath.Abs(input)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absInput); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: absInput}
		}
		return nil, &WorkbookError{Path: absInput, Err: err}
	}

	absOutput := DefaultOutputPath(absInput)
	if output != "" {
		if absOutput, err = filepath.Abs(output); err != nil {
			return nil, err
		}
	}

	sheet, err := Read(absInput, opts)
	if err != nil {
		return nil, err
	}

	doc := render.Render(sheet.Records, sheet.BookName, opts.RenderConfig())

	if err := writeFileAtomic(absOutput, []byte(doc)); err != nil {
		return nil, &WriteError{Path: absOutput, Err: err}
	}

	return &Result{
		InputPath:  absInput,
		OutputPath: absOutput,
		SheetName:  sheet.SheetName,
		Blocks:     len(sheet.Records),
	}, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place. The temporary file is removed on failure.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
