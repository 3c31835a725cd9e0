package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haskenrayuwa_backend/internals/features/reports/ingest"
	"haskenrayuwa_backend/internals/features/reports/region"
)

func filmRow(t *testing.T, cells map[string]string) ingest.Row {
	t.Helper()
	return ingest.NewRow(2, "film.xlsx", cells)
}

func validFilmCells() map[string]string {
	return map[string]string{
		"Team":       "A1",
		"State":      "Abuja",
		"LGA":        "AMAC",
		"Ward":       "W",
		"Village":    "V",
		"Attendance": "12",
		"Date":       "05/06/2024",
		"Month":      "June",
	}
}

func TestNormalizeRow_CanonicalRecord(t *testing.T) {
	cells := validFilmCells()
	cells["S.D Cards"] = "3"
	cells["Population"] = ""

	rec, err := NormalizeRow(filmRow(t, cells))
	require.NoError(t, err)

	assert.Equal(t, "A1", rec.Team)
	assert.Equal(t, region.FCT, rec.State, "Abuja must fold into the canonical FCT value")
	require.NotNil(t, rec.LGA)
	assert.Equal(t, "AMAC", *rec.LGA)
	assert.Equal(t, 12, rec.Attendance)
	assert.Equal(t, "2024/06/05", rec.Date)
	assert.Equal(t, "JUNE", rec.Month)
	assert.Equal(t, 2024, rec.Year)
	require.NotNil(t, rec.SDCards)
	assert.Equal(t, 3, *rec.SDCards)
	assert.Nil(t, rec.Population, "blank optional cell is unknown, not zero")
	assert.Nil(t, rec.UPG)
}

func TestNormalizeRow_UnknownStateFails(t *testing.T) {
	cells := validFilmCells()
	cells["State"] = "Atlantis"

	_, err := NormalizeRow(filmRow(t, cells))
	var ise *region.InvalidStateError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, "Atlantis", ise.Value)
}

func TestNormalizeRow_MissingAttendanceFails(t *testing.T) {
	cells := validFilmCells()
	cells["Attendance"] = ""

	_, err := NormalizeRow(filmRow(t, cells))
	var missing *ingest.RequiredFieldMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Attendance", missing.Field)
	assert.False(t, ingest.IsSkip(err), "missing attendance is a failure, not a skip")
}

func TestNormalizeRow_UnparseableOptionalFails(t *testing.T) {
	cells := validFilmCells()
	cells["People Saved"] = "many"

	_, err := NormalizeRow(filmRow(t, cells))
	var invalid *ingest.InvalidFieldError
	require.True(t, errors.As(err, &invalid))
}

func TestNormalizeRow_BadDateSkips(t *testing.T) {
	cells := validFilmCells()
	cells["Date"] = "June 5th"

	_, err := NormalizeRow(filmRow(t, cells))
	require.Error(t, err)
	assert.True(t, ingest.IsSkip(err))
}

// Two rows sharing a natural key within one batch: the later row's fields
// win where it sets them, earlier values survive where it doesn't.
func TestMergeInto_FieldLevelMerge(t *testing.T) {
	first, err := NormalizeRow(filmRow(t, validFilmCells()))
	require.NoError(t, err)

	secondCells := validFilmCells()
	secondCells["Attendance"] = "15"
	secondCells["S.D Cards"] = "3"
	second, err := NormalizeRow(filmRow(t, secondCells))
	require.NoError(t, err)

	stored := newReport(first)
	mergeInto(&stored, second)

	assert.Equal(t, 15, stored.FilmShowAttendance)
	require.NotNil(t, stored.FilmShowSDCards)
	assert.Equal(t, 3, *stored.FilmShowSDCards)
	assert.Equal(t, "FCT", stored.FilmShowState)
	require.NotNil(t, stored.FilmShowLGA)
	assert.Equal(t, "AMAC", *stored.FilmShowLGA, "field absent from the later row keeps the earlier value")
}

// Re-applying an identical record is a pure no-op merge.
func TestMergeInto_Idempotent(t *testing.T) {
	rec, err := NormalizeRow(filmRow(t, validFilmCells()))
	require.NoError(t, err)

	stored := newReport(rec)
	before := stored
	mergeInto(&stored, rec)

	assert.Equal(t, before, stored)
}

func TestMergeInto_NeverTouchesNaturalKey(t *testing.T) {
	rec, err := NormalizeRow(filmRow(t, validFilmCells()))
	require.NoError(t, err)

	stored := newReport(rec)
	stored.FilmShowTeam = "A1"
	stored.FilmShowVillage = "V"

	mergeInto(&stored, rec)

	assert.Equal(t, "A1", stored.FilmShowTeam)
	assert.Equal(t, "FCT", stored.FilmShowState)
	assert.Equal(t, "W", stored.FilmShowWard)
	assert.Equal(t, "V", stored.FilmShowVillage)
	assert.Equal(t, "2024/06/05", stored.FilmShowDate)
}

func TestApplyUpdates_WhitelistedFields(t *testing.T) {
	rec, err := NormalizeRow(filmRow(t, validFilmCells()))
	require.NoError(t, err)
	stored := newReport(rec)

	err = ApplyUpdates(&stored, map[string]interface{}{
		"film_show_attendance": float64(40),
		"film_show_state":      "federal capital territory",
		"film_show_month":      "july",
		"film_show_sd_cards":   nil,
	})
	require.NoError(t, err)

	assert.Equal(t, 40, stored.FilmShowAttendance)
	assert.Equal(t, "FCT", stored.FilmShowState)
	assert.Equal(t, "JULY", stored.FilmShowMonth)
	assert.Nil(t, stored.FilmShowSDCards)
}

func TestApplyUpdates_RejectsUnknownField(t *testing.T) {
	rec, err := NormalizeRow(filmRow(t, validFilmCells()))
	require.NoError(t, err)
	stored := newReport(rec)

	err = ApplyUpdates(&stored, map[string]interface{}{"film_show_rating": float64(5)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestApplyUpdates_RejectsBadValues(t *testing.T) {
	rec, err := NormalizeRow(filmRow(t, validFilmCells()))
	require.NoError(t, err)
	stored := newReport(rec)

	for field, value := range map[string]interface{}{
		"film_show_attendance": float64(-1),
		"film_show_state":      "Atlantis",
		"film_show_date":       "June 5th",
		"film_show_population": "lots",
	} {
		err := ApplyUpdates(&stored, map[string]interface{}{field: value})
		require.Error(t, err, "field %q", field)
	}
}
