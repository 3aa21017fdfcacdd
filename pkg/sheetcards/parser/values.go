package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	// DateLayout is used for dates without a time of day.
	DateLayout = "2006-01-02"
	// DateTimeLayout is used for dates with a time of day.
	DateTimeLayout = "2006-01-02 15:04:05"
)

// builtinDateFormats lists the built-in number format ids that display dates or times.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateNumFmt reports whether a number format displays a date or time.
func isDateNumFmt(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	return builtinDateFormats[numFmt]
}

// isDateFormatCode reports whether a custom format code contains date or
// time tokens outside quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	inQuote := false
	inBracket := false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			// Elapsed time like [h] is still a time format.
			rest := strings.ToLower(code[i:])
			if strings.HasPrefix(rest, "[h]") || strings.HasPrefix(rest, "[m]") || strings.HasPrefix(rest, "[s]") {
				return true
			}
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		case ch == ';':
			// Only the first section decides.
			return false
		default:
			switch ch | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}

// formatSerialDate converts a spreadsheet serial date to text.
func formatSerialDate(raw string, date1904 bool) (string, bool) {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || serial < 0 {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return "", false
	}
	return formatTime(t), true
}

// formatISODate converts an ISO 8601 date cell (t="d") to text.
func formatISODate(raw string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return formatTime(t)
		}
	}
	return raw
}

func formatTime(t time.Time) string {
	t = t.Round(time.Second)
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(DateLayout)
	}
	return t.Format(DateTimeLayout)
}

// formatNumber normalises a numeric cell value to its shortest decimal form.
// Non-numeric input is returned unchanged.
func formatNumber(raw string) string {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return raw
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(raw string) string {
	switch strings.ToLower(raw) {
	case "1", "true":
		return "TRUE"
	case "0", "false":
		return "FALSE"
	}
	return raw
}
