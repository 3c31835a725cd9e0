package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRow(cells map[string]string) Row {
	return NewRow(2, "test.xlsx", cells)
}

func TestRow_TextAndHas(t *testing.T) {
	row := testRow(map[string]string{"Team": "  A1 ", "Ward": ""})

	assert.Equal(t, "A1", row.Text("Team"))
	assert.True(t, row.Has("Team"))
	assert.False(t, row.Has("Ward"))
	assert.False(t, row.Has("Village"))
}

func TestRow_RequiredText(t *testing.T) {
	row := testRow(map[string]string{"Team": "A1"})

	v, err := row.RequiredText("Team")
	require.NoError(t, err)
	assert.Equal(t, "A1", v)

	_, err = row.RequiredText("Village")
	var missing *RequiredFieldMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Village", missing.Field)
}

func TestRow_RequiredCount(t *testing.T) {
	row := testRow(map[string]string{
		"Attendance": "15",
		"Bad":        "a lot",
	})

	n, err := row.RequiredCount("Attendance")
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	_, err = row.RequiredCount("Bad")
	var invalid *InvalidFieldError
	require.True(t, errors.As(err, &invalid))

	_, err = row.RequiredCount("Missing")
	var missing *RequiredFieldMissingError
	require.True(t, errors.As(err, &missing))
}

// A blank optional cell means unknown, never zero; a present-but-garbage
// cell fails the row.
func TestRow_OptionalCount(t *testing.T) {
	row := testRow(map[string]string{
		"S.D Cards":    "3",
		"Audio Bibles": "",
		"People Saved": "some",
		"Float":        "12.0",
		"Fraction":     "1.5",
		"Negative":     "-2",
	})

	n, err := row.OptionalCount("S.D Cards")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 3, *n)

	n, err = row.OptionalCount("Audio Bibles")
	require.NoError(t, err)
	assert.Nil(t, n)

	n, err = row.OptionalCount("Missing Column")
	require.NoError(t, err)
	assert.Nil(t, n)

	// spreadsheet exports often render integers as floats
	n, err = row.OptionalCount("Float")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 12, *n)

	for _, col := range []string{"People Saved", "Fraction", "Negative"} {
		_, err = row.OptionalCount(col)
		var invalid *InvalidFieldError
		require.True(t, errors.As(err, &invalid), "column %q", col)
	}
}

func TestNormalizeMonth(t *testing.T) {
	assert.Equal(t, "JANUARY", NormalizeMonth(" January "))
	assert.Equal(t, "JAN", NormalizeMonth("jan"))
	assert.Equal(t, "", NormalizeMonth("  "))
}

func TestParseEventDate_Structured(t *testing.T) {
	for _, raw := range []string{"2024-06-05", "2024-06-05 00:00:00", "2024/06/05"} {
		got, err := ParseEventDate(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, "2024/06/05", got, "input %q", raw)
	}
}

func TestParseEventDate_FreeTextDayMonthYear(t *testing.T) {
	got, err := ParseEventDate("05/06/2024")
	require.NoError(t, err)
	assert.Equal(t, "2024/06/05", got)
}

// Malformed dates skip the row instead of failing the batch, and the skip
// carries a reason for the summary.
func TestParseEventDate_SkipsOnFailure(t *testing.T) {
	for _, raw := range []string{"", "June 5th", "2024", "32/13/2024"} {
		_, err := ParseEventDate(raw)
		require.Error(t, err, "input %q", raw)
		assert.True(t, IsSkip(err), "input %q", raw)
	}
}
