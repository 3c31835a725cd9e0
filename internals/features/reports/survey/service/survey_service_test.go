package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haskenrayuwa_backend/internals/features/reports/ingest"
	"haskenrayuwa_backend/internals/features/reports/region"
)

func surveyRow(t *testing.T, cells map[string]string) ingest.Row {
	t.Helper()
	return ingest.NewRow(2, "survey.xlsx", cells)
}

func validSurveyCells() map[string]string {
	return map[string]string{
		"State":                          "Abuja",
		"L.G.A":                          "AMAC",
		"Ward":                           "W",
		"Village":                        "V",
		"Esti Christians population":     "120",
		"Esti Muslims":                   "300",
		"Esti population of the village": "500",
		"People Group":                   "Gbagyi",
		"Practiced Religion":             "Islam",
	}
}

func TestNormalizeRow_CanonicalSurvey(t *testing.T) {
	rec, err := NormalizeRow(surveyRow(t, validSurveyCells()))
	require.NoError(t, err)

	assert.Equal(t, region.FCT, rec.State, "Abuja must fold into the canonical FCT value")
	require.NotNil(t, rec.LGA)
	assert.Equal(t, "AMAC", *rec.LGA)
	assert.Equal(t, "V", rec.Village)
	require.NotNil(t, rec.ChristianPopulation)
	assert.Equal(t, 120, *rec.ChristianPopulation)
	require.NotNil(t, rec.TotalPopulation)
	assert.Equal(t, 500, *rec.TotalPopulation)
	assert.Nil(t, rec.Converts, "blank count is unknown, not zero")
	assert.Nil(t, rec.FilmAttendance)
	require.NotNil(t, rec.PracticedReligion)
	assert.Equal(t, "Islam", *rec.PracticedReligion)
}

func TestNormalizeRow_OnlyStateAndVillageRequired(t *testing.T) {
	rec, err := NormalizeRow(surveyRow(t, map[string]string{
		"State":   "Kano",
		"Village": "Dala",
	}))
	require.NoError(t, err)
	assert.Equal(t, region.State("Kano"), rec.State)
	assert.Nil(t, rec.LGA)
	assert.Nil(t, rec.TotalPopulation)
}

func TestNormalizeRow_MissingVillageFails(t *testing.T) {
	cells := validSurveyCells()
	delete(cells, "Village")

	_, err := NormalizeRow(surveyRow(t, cells))
	var missing *ingest.RequiredFieldMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Village", missing.Field)
}

func TestNormalizeRow_UnknownStateFails(t *testing.T) {
	cells := validSurveyCells()
	cells["State"] = "Atlantis"

	_, err := NormalizeRow(surveyRow(t, cells))
	var ise *region.InvalidStateError
	require.True(t, errors.As(err, &ise))
}

func TestNormalizeRow_UnparseableCountFails(t *testing.T) {
	cells := validSurveyCells()
	cells["Esti Muslims"] = "about 300"

	_, err := NormalizeRow(surveyRow(t, cells))
	var invalid *ingest.InvalidFieldError
	require.True(t, errors.As(err, &invalid))
	assert.False(t, ingest.IsSkip(err))
}

// A re-survey of the same village overwrites only the figures it carries.
func TestMergeInto_ReSurveyKeepsUnmentionedFigures(t *testing.T) {
	first, err := NormalizeRow(surveyRow(t, validSurveyCells()))
	require.NoError(t, err)

	secondCells := map[string]string{
		"State":        "Abuja",
		"Village":      "V",
		"Esti Muslims": "280",
		"Converts":     "14",
	}
	second, err := NormalizeRow(surveyRow(t, secondCells))
	require.NoError(t, err)

	stored := newRecord(first)
	mergeInto(&stored, second)

	require.NotNil(t, stored.SurveyMuslimPopulation)
	assert.Equal(t, 280, *stored.SurveyMuslimPopulation)
	require.NotNil(t, stored.SurveyConverts)
	assert.Equal(t, 14, *stored.SurveyConverts)
	require.NotNil(t, stored.SurveyChristianPopulation)
	assert.Equal(t, 120, *stored.SurveyChristianPopulation, "figure absent from the later survey keeps the earlier value")
	require.NotNil(t, stored.SurveyLGA)
	assert.Equal(t, "AMAC", *stored.SurveyLGA)
}

func TestMergeInto_Idempotent(t *testing.T) {
	rec, err := NormalizeRow(surveyRow(t, validSurveyCells()))
	require.NoError(t, err)

	stored := newRecord(rec)
	before := stored
	mergeInto(&stored, rec)

	assert.Equal(t, before, stored)
}

func TestMergeInto_NeverTouchesNaturalKey(t *testing.T) {
	rec, err := NormalizeRow(surveyRow(t, validSurveyCells()))
	require.NoError(t, err)

	stored := newRecord(rec)
	mergeInto(&stored, rec)

	assert.Equal(t, "FCT", stored.SurveyState)
	assert.Equal(t, "V", stored.SurveyVillage)
}

func TestApplyUpdates_WhitelistedFields(t *testing.T) {
	rec, err := NormalizeRow(surveyRow(t, validSurveyCells()))
	require.NoError(t, err)
	stored := newRecord(rec)

	err = ApplyUpdates(&stored, map[string]interface{}{
		"survey_state":              "federal capital territory",
		"survey_converts":           float64(9),
		"survey_practiced_religion": "Christianity",
		"survey_muslim_population":  nil,
		"survey_people_group":       "Hausa",
	})
	require.NoError(t, err)

	assert.Equal(t, "FCT", stored.SurveyState)
	require.NotNil(t, stored.SurveyConverts)
	assert.Equal(t, 9, *stored.SurveyConverts)
	assert.Nil(t, stored.SurveyMuslimPopulation)
	require.NotNil(t, stored.SurveyPeopleGroup)
	assert.Equal(t, "Hausa", *stored.SurveyPeopleGroup)
}

func TestApplyUpdates_RejectsUnknownField(t *testing.T) {
	rec, err := NormalizeRow(surveyRow(t, validSurveyCells()))
	require.NoError(t, err)
	stored := newRecord(rec)

	err = ApplyUpdates(&stored, map[string]interface{}{"survey_rating": float64(5)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestApplyUpdates_RejectsBadValues(t *testing.T) {
	rec, err := NormalizeRow(surveyRow(t, validSurveyCells()))
	require.NoError(t, err)
	stored := newRecord(rec)

	for field, value := range map[string]interface{}{
		"survey_state":            "Atlantis",
		"survey_converts":         float64(-3),
		"survey_total_population": "lots",
		"survey_village":          "",
	} {
		err := ApplyUpdates(&stored, map[string]interface{}{field: value})
		require.Error(t, err, "field %q", field)
	}
}
