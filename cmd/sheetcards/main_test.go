package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/xuri/excelize/v2"
)

// isolate runs the test in an empty working directory without user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	return dir
}

func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Age")
	f.SetCellValue("Sheet1", "A2", "Alice")
	f.SetCellValue("Sheet1", "B2", 30)
	f.SetCellValue("Sheet1", "A3", "Bob")
	f.SetCellValue("Sheet1", "B3", 41)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunWithoutArgsPrintsUsage(t *testing.T) {
	isolate(t)

	code, stdout, stderr := runCLI()
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stdout, "Использование:") {
		t.Errorf("Expected usage on stdout, got %q", stdout)
	}
	if stderr != "" {
		t.Errorf("Expected empty stderr, got %q", stderr)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := isolate(t)

	code, _, stderr := runCLI("missing.xlsx")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	want := "Файл " + filepath.Join(dir, "missing.xlsx") + " не найден."
	if !strings.Contains(stderr, want) {
		t.Errorf("Expected %q in stderr, got %q", want, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "missing.html")); !os.IsNotExist(err) {
		t.Error("output file must not be created")
	}
}

func TestRunConvertsRelativePaths(t *testing.T) {
	dir := isolate(t)
	writeWorkbook(t, filepath.Join(dir, "people.xlsx"))

	code, stdout, stderr := runCLI("people.xlsx")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d (stderr %q)", code, stderr)
	}

	output := filepath.Join(dir, "people.html")
	want := "Создан файл " + output + ". Количество блоков: 2"
	if !strings.Contains(stdout, want) {
		t.Errorf("Expected %q in stdout, got %q", want, stdout)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunExplicitOutputAndTitle(t *testing.T) {
	dir := isolate(t)
	writeWorkbook(t, filepath.Join(dir, "people.xlsx"))

	code, _, stderr := runCLI("--title", "Сотрудники", "people.xlsx", "report.html")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d (stderr %q)", code, stderr)
	}

	data, err := os.ReadFile(filepath.Join(dir, "report.html"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), "<title>people.xlsx — Сотрудники</title>") {
		t.Error("title flag not applied")
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := isolate(t)
	writeWorkbook(t, filepath.Join(dir, "people.xlsx"))
	if err := os.WriteFile(filepath.Join(dir, ".sheetcards.yaml"), []byte("title: Из конфига\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if code, _, stderr := runCLI("people.xlsx"); code != 0 {
		t.Fatalf("Expected exit code 0, got %d (stderr %q)", code, stderr)
	}
	data, err := os.ReadFile(filepath.Join(dir, "people.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<h1 class=\"data-page__title\">Из конфига</h1>") {
		t.Error("title from config file not applied")
	}
}

func TestRunBrokenWorkbook(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "broken.xlsx"), []byte("PK\x03\x04 nope"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := runCLI("broken.xlsx")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.HasPrefix(stderr, "Ошибка: ") {
		t.Errorf("Expected error prefix, got %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.html")); !os.IsNotExist(err) {
		t.Error("output file must not be created")
	}
}

func TestRunTooManyArgs(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI("a.xlsx", "b.html", "c")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.HasPrefix(stderr, "Ошибка: ") {
		t.Errorf("Expected error prefix, got %q", stderr)
	}
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	dir := isolate(t)
	writeWorkbook(t, filepath.Join(dir, "people.xlsx"))

	code, _, stderr := runCLI("-v", "people.xlsx")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stderr, "document written") {
		t.Errorf("Expected debug log, got %q", stderr)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
		wantErr  bool
	}{
		{";", ';', false},
		{`\t`, '\t', false},
		{"|", '|', false},
		{"", 0, true},
		{";;", 0, true},
	}

	for _, tt := range tests {
		result, err := parseDelimiter(tt.input)
		if (err != nil) != tt.wantErr || result != tt.expected {
			t.Errorf("parseDelimiter(%q) = %q, %v", tt.input, result, err)
		}
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir for toolchains that predate it.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
