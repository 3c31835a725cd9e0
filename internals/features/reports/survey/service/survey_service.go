package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/ingest"
	"haskenrayuwa_backend/internals/features/reports/region"
	"haskenrayuwa_backend/internals/features/reports/survey/dto"
	"haskenrayuwa_backend/internals/features/reports/survey/model"
)

// SurveyRecordInput is a fully-normalized village survey, ready for
// reconciliation. Every count is optional; a nil pointer means the
// surveyor left the figure blank and a merge must not erase it.
type SurveyRecordInput struct {
	State                 region.State
	LGA                   *string
	Ward                  *string
	Village               string
	ChristianPopulation   *int
	MuslimPopulation      *int
	TraditionalPopulation *int
	Converts              *int
	TotalPopulation       *int
	FilmAttendance        *int
	PeopleGroup           *string
	PracticedReligion     *string
}

// NormalizeRow converts one spreadsheet row into a canonical survey input.
func NormalizeRow(row ingest.Row) (SurveyRecordInput, error) {
	var rec SurveyRecordInput

	rawState, err := row.RequiredText("State")
	if err != nil {
		return rec, err
	}
	state, err := region.Normalize(rawState)
	if err != nil {
		return rec, err
	}
	village, err := row.RequiredText("Village")
	if err != nil {
		return rec, err
	}

	christians, err := row.OptionalCount("Esti Christians population")
	if err != nil {
		return rec, err
	}
	muslims, err := row.OptionalCount("Esti Muslims")
	if err != nil {
		return rec, err
	}
	traditional, err := row.OptionalCount("Esti Traditional People")
	if err != nil {
		return rec, err
	}
	converts, err := row.OptionalCount("Converts")
	if err != nil {
		return rec, err
	}
	total, err := row.OptionalCount("Esti population of the village")
	if err != nil {
		return rec, err
	}
	attendance, err := row.OptionalCount("Film Attendance")
	if err != nil {
		return rec, err
	}

	rec = SurveyRecordInput{
		State:                 state,
		LGA:                   row.OptionalText("L.G.A"),
		Ward:                  row.OptionalText("Ward"),
		Village:               village,
		ChristianPopulation:   christians,
		MuslimPopulation:      muslims,
		TraditionalPopulation: traditional,
		Converts:              converts,
		TotalPopulation:       total,
		FilmAttendance:        attendance,
		PeopleGroup:           row.OptionalText("People Group"),
		PracticedReligion:     row.OptionalText("Practiced Religion"),
	}
	return rec, nil
}

// FromCreateRequest normalizes a manual-entry body the same way uploaded
// rows are normalized.
func FromCreateRequest(body dto.CreateSurveyRecordRequest) (SurveyRecordInput, error) {
	var rec SurveyRecordInput

	state, err := region.Normalize(body.SurveyState)
	if err != nil {
		return rec, err
	}

	rec = SurveyRecordInput{
		State:                 state,
		LGA:                   body.SurveyLGA,
		Ward:                  body.SurveyWard,
		Village:               body.SurveyVillage,
		ChristianPopulation:   body.SurveyChristianPopulation,
		MuslimPopulation:      body.SurveyMuslimPopulation,
		TraditionalPopulation: body.SurveyTraditionalPopulation,
		Converts:              body.SurveyConverts,
		TotalPopulation:       body.SurveyTotalPopulation,
		FilmAttendance:        body.SurveyFilmAttendance,
		PeopleGroup:           body.SurveyPeopleGroup,
		PracticedReligion:     body.SurveyPracticedReligion,
	}
	return rec, nil
}

// Upsert inserts the survey or merges it into the existing record for the
// same village. A village is identified by (state, village) alone, so a
// re-survey supersedes the earlier figures it carries.
func Upsert(tx *gorm.DB, rec SurveyRecordInput) (ingest.Outcome, error) {
	var existing model.SurveyRecord
	err := tx.Where(
		"survey_state = ? AND survey_village = ?",
		string(rec.State), rec.Village,
	).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		record := newRecord(rec)
		if err := tx.Create(&record).Error; err != nil {
			return 0, &ingest.StorageError{Op: "insert survey record", Err: err}
		}
		return ingest.OutcomeInserted, nil
	}
	if err != nil {
		return 0, &ingest.StorageError{Op: "match survey record", Err: err}
	}

	mergeInto(&existing, rec)
	if err := tx.Save(&existing).Error; err != nil {
		return 0, &ingest.StorageError{Op: "merge survey record", Err: err}
	}
	return ingest.OutcomeMerged, nil
}

// Insert creates a record without reconciliation, for the manual-entry
// endpoint. A natural-key collision surfaces as a duplicate error.
func Insert(db *gorm.DB, rec SurveyRecordInput) (model.SurveyRecord, error) {
	record := newRecord(rec)
	if err := db.Create(&record).Error; err != nil {
		return model.SurveyRecord{}, err
	}
	return record, nil
}

// Totals sums the surveyed counts over whatever filter the query carries.
// COALESCE keeps the sums at zero when no rows match.
func Totals(query *gorm.DB) (dto.SurveyTotalsDTO, error) {
	var totals dto.SurveyTotalsDTO
	err := query.
		Select(`COALESCE(SUM(survey_christian_population), 0) AS total_christian_population,
			COALESCE(SUM(survey_muslim_population), 0) AS total_muslim_population,
			COALESCE(SUM(survey_traditional_population), 0) AS total_traditional_population,
			COALESCE(SUM(survey_converts), 0) AS total_converts,
			COALESCE(SUM(survey_total_population), 0) AS total_population,
			COALESCE(SUM(survey_film_attendance), 0) AS total_film_attendance`).
		Scan(&totals).Error
	return totals, err
}

func newRecord(rec SurveyRecordInput) model.SurveyRecord {
	return model.SurveyRecord{
		SurveyState:                 string(rec.State),
		SurveyLGA:                   rec.LGA,
		SurveyWard:                  rec.Ward,
		SurveyVillage:               rec.Village,
		SurveyChristianPopulation:   rec.ChristianPopulation,
		SurveyMuslimPopulation:      rec.MuslimPopulation,
		SurveyTraditionalPopulation: rec.TraditionalPopulation,
		SurveyConverts:              rec.Converts,
		SurveyTotalPopulation:       rec.TotalPopulation,
		SurveyFilmAttendance:        rec.FilmAttendance,
		SurveyPeopleGroup:           rec.PeopleGroup,
		SurveyPracticedReligion:     rec.PracticedReligion,
	}
}

// mergeInto overwrites every field the incoming survey carries and leaves
// the rest alone. Natural-key fields are never touched.
func mergeInto(m *model.SurveyRecord, rec SurveyRecordInput) {
	if rec.LGA != nil {
		m.SurveyLGA = rec.LGA
	}
	if rec.Ward != nil {
		m.SurveyWard = rec.Ward
	}
	if rec.ChristianPopulation != nil {
		m.SurveyChristianPopulation = rec.ChristianPopulation
	}
	if rec.MuslimPopulation != nil {
		m.SurveyMuslimPopulation = rec.MuslimPopulation
	}
	if rec.TraditionalPopulation != nil {
		m.SurveyTraditionalPopulation = rec.TraditionalPopulation
	}
	if rec.Converts != nil {
		m.SurveyConverts = rec.Converts
	}
	if rec.TotalPopulation != nil {
		m.SurveyTotalPopulation = rec.TotalPopulation
	}
	if rec.FilmAttendance != nil {
		m.SurveyFilmAttendance = rec.FilmAttendance
	}
	if rec.PeopleGroup != nil {
		m.SurveyPeopleGroup = rec.PeopleGroup
	}
	if rec.PracticedReligion != nil {
		m.SurveyPracticedReligion = rec.PracticedReligion
	}
}

// ApplyUpdates merges a partial-update body into the record. The updatable
// field set is closed; unknown names are rejected at the boundary.
func ApplyUpdates(m *model.SurveyRecord, updates map[string]interface{}) error {
	for field, value := range updates {
		switch field {
		case "survey_state":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			state, err := region.Normalize(s)
			if err != nil {
				return err
			}
			m.SurveyState = string(state)
		case "survey_lga":
			p, err := optionalStringValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyLGA = p
		case "survey_ward":
			p, err := optionalStringValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyWard = p
		case "survey_village":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyVillage = s
		case "survey_christian_population":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyChristianPopulation = p
		case "survey_muslim_population":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyMuslimPopulation = p
		case "survey_traditional_population":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyTraditionalPopulation = p
		case "survey_converts":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyConverts = p
		case "survey_total_population":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyTotalPopulation = p
		case "survey_film_attendance":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyFilmAttendance = p
		case "survey_people_group":
			p, err := optionalStringValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyPeopleGroup = p
		case "survey_practiced_religion":
			p, err := optionalStringValue(field, value)
			if err != nil {
				return err
			}
			m.SurveyPracticedReligion = p
		default:
			return fmt.Errorf("unknown field: %s", field)
		}
	}
	return nil
}

func stringValue(field string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok || s == "" {
		return "", &ingest.InvalidFieldError{Field: field, Value: fmt.Sprint(value)}
	}
	return s, nil
}

func optionalStringValue(field string, value interface{}) (*string, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, &ingest.InvalidFieldError{Field: field, Value: fmt.Sprint(value)}
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

func countValue(field string, value interface{}) (int, error) {
	f, ok := value.(float64)
	if !ok || f < 0 || f != float64(int(f)) {
		return 0, &ingest.InvalidFieldError{Field: field, Value: fmt.Sprint(value)}
	}
	return int(f), nil
}

func optionalCountValue(field string, value interface{}) (*int, error) {
	if value == nil {
		return nil, nil
	}
	n, err := countValue(field, value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
