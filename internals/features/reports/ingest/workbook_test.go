package ingest

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds an xlsx file on disk with a header row followed by
// the given data rows.
func writeWorkbook(t *testing.T, headers []string, data [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	cells := append([][]string{headers}, data...)
	for i, rowCells := range cells {
		for j, v := range rowCells {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "upload.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// fileHeader wraps a file on disk into the *multipart.FileHeader shape the
// upload endpoints receive.
func fileHeader(t *testing.T, path string) *multipart.FileHeader {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("files", filepath.Base(path))
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	mr := multipart.NewReader(&buf, mw.Boundary())
	form, err := mr.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	headers := form.File["files"]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestParseWorkbook_MapsHeaderToCells(t *testing.T) {
	path := writeWorkbook(t,
		[]string{"Team", "State", "Attendance"},
		[][]string{
			{"A1", "Lagos", "12"},
			{"A2", "Abuja", "30"},
		},
	)

	rows, err := ParseWorkbook(path, "upload.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Index)
	assert.Equal(t, "upload.xlsx", rows[0].File)
	assert.Equal(t, "A1", rows[0].Text("Team"))
	assert.Equal(t, "Lagos", rows[0].Text("State"))
	assert.Equal(t, 3, rows[1].Index)
	assert.Equal(t, "Abuja", rows[1].Text("State"))
}

func TestParseWorkbook_SkipsFullyBlankRows(t *testing.T) {
	path := writeWorkbook(t,
		[]string{"Team", "State"},
		[][]string{
			{"A1", "Lagos"},
			{"", ""},
			{"A2", "Kano"},
		},
	)

	rows, err := ParseWorkbook(path, "upload.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A2", rows[1].Text("Team"))
}

func TestParseWorkbook_HeaderOnly(t *testing.T) {
	path := writeWorkbook(t, []string{"Team", "State"}, nil)

	rows, err := ParseWorkbook(path, "upload.xlsx")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseWorkbook_RejectsNonWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := ParseWorkbook(path, "not.xlsx")
	require.Error(t, err)
}

// One bad row must not abort the batch: failures and skips are recorded
// with their row position and processing continues.
func TestRunner_ProcessFiles_CollectsOutcomes(t *testing.T) {
	path := writeWorkbook(t,
		[]string{"Team"},
		[][]string{{"insert"}, {"merge"}, {"skip"}, {"fail"}, {"insert"}},
	)
	fh := fileHeader(t, path)

	runner := NewRunner(nil, "filmshow")
	summary := runner.ProcessFiles([]*multipart.FileHeader{fh}, func(row Row) (Outcome, error) {
		switch row.Text("Team") {
		case "insert":
			return OutcomeInserted, nil
		case "merge":
			return OutcomeMerged, nil
		case "skip":
			return 0, Skip("unparseable date %q", "June 5th")
		default:
			return 0, &RequiredFieldMissingError{Field: "Attendance"}
		}
	})

	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 1, summary.Merged)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)

	require.Len(t, summary.Errors, 1)
	assert.Equal(t, 5, summary.Errors[0].Row)
	assert.Contains(t, summary.Errors[0].Reason, "Attendance")

	require.Len(t, summary.Skips, 1)
	assert.Equal(t, 4, summary.Skips[0].Row)
	assert.Contains(t, summary.Skips[0].Reason, "June 5th")
}

func TestRunner_ProcessFiles_RecordsUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	fh := fileHeader(t, path)

	runner := NewRunner(nil, "survey")
	summary := runner.ProcessFiles([]*multipart.FileHeader{fh}, func(row Row) (Outcome, error) {
		t.Fatal("handler must not run for an unparseable file")
		return 0, nil
	})

	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, 0, summary.Errors[0].Row)
}
