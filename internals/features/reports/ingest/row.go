package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is one data row of an uploaded sheet, keyed by trimmed column label.
// Index is the spreadsheet row number (the header is row 1).
type Row struct {
	Index int
	File  string
	cells map[string]string
}

func NewRow(index int, file string, cells map[string]string) Row {
	return Row{Index: index, File: file, cells: cells}
}

// Text returns the trimmed cell value, empty when the column is absent.
func (r Row) Text(col string) string {
	return strings.TrimSpace(r.cells[col])
}

// Has reports whether the column holds a non-blank value.
func (r Row) Has(col string) bool {
	return r.Text(col) != ""
}

// RequiredText fails the row when the column is blank.
func (r Row) RequiredText(col string) (string, error) {
	v := r.Text(col)
	if v == "" {
		return "", &RequiredFieldMissingError{Field: col}
	}
	return v, nil
}

// OptionalText returns nil for a blank cell; blank means unknown, not "".
func (r Row) OptionalText(col string) *string {
	v := r.Text(col)
	if v == "" {
		return nil
	}
	return &v
}

// RequiredCount parses a required non-negative integer cell.
func (r Row) RequiredCount(col string) (int, error) {
	v := r.Text(col)
	if v == "" {
		return 0, &RequiredFieldMissingError{Field: col}
	}
	return parseCount(col, v)
}

// OptionalCount parses an optional non-negative integer cell. A blank cell
// yields nil (unknown, distinct from zero); a present-but-unparseable value
// fails the row.
func (r Row) OptionalCount(col string) (*int, error) {
	v := r.Text(col)
	if v == "" {
		return nil, nil
	}
	n, err := parseCount(col, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// parseCount accepts the numeric shapes spreadsheet exports produce
// ("12", "12.0") but rejects fractions and negatives.
func parseCount(col, raw string) (int, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || f < 0 || f != math.Trunc(f) {
		return 0, &InvalidFieldError{Field: col, Value: raw}
	}
	return int(f), nil
}

// NormalizeMonth uppercases the month label for case-insensitive lookup.
// No calendar vocabulary is enforced; teams write what they write.
func NormalizeMonth(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// EventDateLayout is the canonical storage format for film-show dates.
const EventDateLayout = "2006/01/02"

// structured layouts a spreadsheet export produces for date-typed cells
var structuredDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// freeTextDateLayout is the single strict format accepted for hand-typed
// dates (day/month/year).
const freeTextDateLayout = "02/01/2006"

// ParseEventDate normalizes a date cell to the canonical YYYY/MM/DD form.
// Structured cell values are accepted directly; free text gets one strict
// day/month/year attempt. Anything else skips the row rather than failing
// the batch, and the skip is surfaced in the summary.
func ParseEventDate(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", Skip("row has no event date")
	}

	for _, layout := range structuredDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(EventDateLayout), nil
		}
	}

	if t, err := time.Parse(freeTextDateLayout, v); err == nil {
		return t.Format(EventDateLayout), nil
	}

	return "", Skip("unparseable date %q", raw)
}
