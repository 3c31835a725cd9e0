package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haskenrayuwa_backend/internals/features/reports/ingest"
	"haskenrayuwa_backend/internals/features/reports/region"
)

func visitRow(cells map[string]string) ingest.Row {
	return ingest.NewRow(3, "visits.xlsx", cells)
}

func validVisitCells() map[string]string {
	return map[string]string{
		"Team":       "B2",
		"State":      "cross river",
		"Ward":       "Ikom",
		"Village":    "Etomi",
		"Attendance": "8",
		"Month":      "March",
	}
}

func TestNormalizeRow_CanonicalRecord(t *testing.T) {
	cells := validVisitCells()
	cells["Manuals Given"] = "4"
	cells["Bibles Given"] = ""

	rec, err := NormalizeRow(visitRow(cells))
	require.NoError(t, err)

	assert.Equal(t, region.State("Cross River"), rec.State)
	assert.Equal(t, "MARCH", rec.Month)
	assert.Equal(t, 8, rec.Attendance)
	require.NotNil(t, rec.Manuals)
	assert.Equal(t, 4, *rec.Manuals)
	assert.Nil(t, rec.Bibles)
	assert.Nil(t, rec.LGA)
}

func TestNormalizeRow_MissingMonthFails(t *testing.T) {
	cells := validVisitCells()
	delete(cells, "Month")

	_, err := NormalizeRow(visitRow(cells))
	var missing *ingest.RequiredFieldMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Month", missing.Field)
}

func TestNormalizeRow_MissingAttendanceFails(t *testing.T) {
	cells := validVisitCells()
	cells["Attendance"] = ""

	_, err := NormalizeRow(visitRow(cells))
	var missing *ingest.RequiredFieldMissingError
	require.True(t, errors.As(err, &missing))
}

func TestNormalizeRow_UnknownStateFails(t *testing.T) {
	cells := validVisitCells()
	cells["State"] = "Gotham"

	_, err := NormalizeRow(visitRow(cells))
	var ise *region.InvalidStateError
	require.True(t, errors.As(err, &ise))
}

func TestMergeInto_KeepsUnmentionedFields(t *testing.T) {
	firstCells := validVisitCells()
	firstCells["Bibles Given"] = "2"
	first, err := NormalizeRow(visitRow(firstCells))
	require.NoError(t, err)

	secondCells := validVisitCells()
	secondCells["Attendance"] = "11"
	secondCells["Manuals Given"] = "5"
	second, err := NormalizeRow(visitRow(secondCells))
	require.NoError(t, err)

	stored := newReport(first)
	mergeInto(&stored, second)

	assert.Equal(t, 11, stored.DiscipleshipAttendance)
	require.NotNil(t, stored.DiscipleshipManuals)
	assert.Equal(t, 5, *stored.DiscipleshipManuals)
	require.NotNil(t, stored.DiscipleshipBibles)
	assert.Equal(t, 2, *stored.DiscipleshipBibles, "field absent from the later row keeps the earlier value")
	assert.Equal(t, "MARCH", stored.DiscipleshipMonth)
}

func TestApplyUpdates_ClosedFieldSet(t *testing.T) {
	rec, err := NormalizeRow(visitRow(validVisitCells()))
	require.NoError(t, err)
	stored := newReport(rec)

	require.NoError(t, ApplyUpdates(&stored, map[string]interface{}{
		"discipleship_month":      "april",
		"discipleship_attendance": float64(20),
	}))
	assert.Equal(t, "APRIL", stored.DiscipleshipMonth)
	assert.Equal(t, 20, stored.DiscipleshipAttendance)

	err = ApplyUpdates(&stored, map[string]interface{}{"discipleship_films": float64(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}
