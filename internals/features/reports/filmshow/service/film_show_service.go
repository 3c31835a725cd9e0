package service

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/filmshow/dto"
	"haskenrayuwa_backend/internals/features/reports/filmshow/model"
	"haskenrayuwa_backend/internals/features/reports/ingest"
	"haskenrayuwa_backend/internals/features/reports/region"
)

// FilmShowRecord is a fully-normalized screening report, ready for
// reconciliation. Nil pointers mean the source row did not mention the
// field, which a merge must leave untouched.
type FilmShowRecord struct {
	Team        string
	State       region.State
	LGA         *string
	Ward        string
	Village     string
	Population  *int
	UPG         *string
	Attendance  int
	SDCards     *int
	AudioBibles *int
	PeopleSaved *int
	Date        string
	Month       string
	Year        int
}

// NormalizeRow converts one spreadsheet row into a canonical record.
// Output is all-or-nothing: either every rule passes or the row is
// rejected (or skipped, for malformed dates).
func NormalizeRow(row ingest.Row) (FilmShowRecord, error) {
	var rec FilmShowRecord

	rawState, err := row.RequiredText("State")
	if err != nil {
		return rec, err
	}
	state, err := region.Normalize(rawState)
	if err != nil {
		return rec, err
	}

	team, err := row.RequiredText("Team")
	if err != nil {
		return rec, err
	}
	ward, err := row.RequiredText("Ward")
	if err != nil {
		return rec, err
	}
	village, err := row.RequiredText("Village")
	if err != nil {
		return rec, err
	}
	month, err := row.RequiredText("Month")
	if err != nil {
		return rec, err
	}

	attendance, err := row.RequiredCount("Attendance")
	if err != nil {
		return rec, err
	}
	population, err := row.OptionalCount("Population")
	if err != nil {
		return rec, err
	}
	sdCards, err := row.OptionalCount("S.D Cards")
	if err != nil {
		return rec, err
	}
	audioBibles, err := row.OptionalCount("Audio Bibles")
	if err != nil {
		return rec, err
	}
	peopleSaved, err := row.OptionalCount("People Saved")
	if err != nil {
		return rec, err
	}

	date, err := ingest.ParseEventDate(row.Text("Date"))
	if err != nil {
		return rec, err
	}

	rec = FilmShowRecord{
		Team:        team,
		State:       state,
		LGA:         row.OptionalText("LGA"),
		Ward:        ward,
		Village:     village,
		Population:  population,
		UPG:         row.OptionalText("UPG"),
		Attendance:  attendance,
		SDCards:     sdCards,
		AudioBibles: audioBibles,
		PeopleSaved: peopleSaved,
		Date:        date,
		Month:       ingest.NormalizeMonth(month),
		Year:        yearOf(date),
	}
	return rec, nil
}

// FromCreateRequest normalizes a manual-entry body the same way uploaded
// rows are normalized, so both paths produce identical canonical records.
func FromCreateRequest(body dto.CreateFilmShowReportRequest) (FilmShowRecord, error) {
	var rec FilmShowRecord

	state, err := region.Normalize(body.FilmShowState)
	if err != nil {
		return rec, err
	}
	date, err := ingest.ParseEventDate(body.FilmShowDate)
	if err != nil {
		// a manual entry has no batch to fall back on, so a bad date is
		// a hard error rather than a skip
		return rec, &ingest.InvalidFieldError{Field: "film_show_date", Value: body.FilmShowDate}
	}

	rec = FilmShowRecord{
		Team:        body.FilmShowTeam,
		State:       state,
		LGA:         body.FilmShowLGA,
		Ward:        body.FilmShowWard,
		Village:     body.FilmShowVillage,
		Population:  body.FilmShowPopulation,
		UPG:         body.FilmShowUPG,
		Attendance:  *body.FilmShowAttendance,
		SDCards:     body.FilmShowSDCards,
		AudioBibles: body.FilmShowAudioBibles,
		PeopleSaved: body.FilmShowPeopleSaved,
		Date:        date,
		Month:       ingest.NormalizeMonth(body.FilmShowMonth),
		Year:        yearOf(date),
	}
	return rec, nil
}

// Upsert inserts the record or merges it into the existing report sharing
// its natural key. The caller wraps this in a transaction so each row is
// atomic from a concurrent reader's perspective.
func Upsert(tx *gorm.DB, rec FilmShowRecord) (ingest.Outcome, error) {
	var existing model.FilmShowReport
	err := tx.Where(
		"film_show_team = ? AND film_show_state = ? AND film_show_ward = ? AND film_show_village = ? AND film_show_date = ?",
		rec.Team, string(rec.State), rec.Ward, rec.Village, rec.Date,
	).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		report := newReport(rec)
		if err := tx.Create(&report).Error; err != nil {
			return 0, &ingest.StorageError{Op: "insert film show report", Err: err}
		}
		return ingest.OutcomeInserted, nil
	}
	if err != nil {
		return 0, &ingest.StorageError{Op: "match film show report", Err: err}
	}

	mergeInto(&existing, rec)
	if err := tx.Save(&existing).Error; err != nil {
		return 0, &ingest.StorageError{Op: "merge film show report", Err: err}
	}
	return ingest.OutcomeMerged, nil
}

// Insert creates a report without reconciliation, for the manual-entry
// endpoint. A natural-key collision surfaces as a duplicate error.
func Insert(db *gorm.DB, rec FilmShowRecord) (model.FilmShowReport, error) {
	report := newReport(rec)
	if err := db.Create(&report).Error; err != nil {
		return model.FilmShowReport{}, err
	}
	return report, nil
}

func newReport(rec FilmShowRecord) model.FilmShowReport {
	return model.FilmShowReport{
		FilmShowTeam:        rec.Team,
		FilmShowState:       string(rec.State),
		FilmShowLGA:         rec.LGA,
		FilmShowWard:        rec.Ward,
		FilmShowVillage:     rec.Village,
		FilmShowPopulation:  rec.Population,
		FilmShowUPG:         rec.UPG,
		FilmShowAttendance:  rec.Attendance,
		FilmShowSDCards:     rec.SDCards,
		FilmShowAudioBibles: rec.AudioBibles,
		FilmShowPeopleSaved: rec.PeopleSaved,
		FilmShowDate:        rec.Date,
		FilmShowMonth:       rec.Month,
		FilmShowYear:        rec.Year,
	}
}

// mergeInto overwrites every field the canonical record carries and leaves
// the rest alone. Natural-key fields are never touched; they were the
// basis of the match.
func mergeInto(m *model.FilmShowReport, rec FilmShowRecord) {
	if rec.LGA != nil {
		m.FilmShowLGA = rec.LGA
	}
	if rec.Population != nil {
		m.FilmShowPopulation = rec.Population
	}
	if rec.UPG != nil {
		m.FilmShowUPG = rec.UPG
	}
	m.FilmShowAttendance = rec.Attendance
	if rec.SDCards != nil {
		m.FilmShowSDCards = rec.SDCards
	}
	if rec.AudioBibles != nil {
		m.FilmShowAudioBibles = rec.AudioBibles
	}
	if rec.PeopleSaved != nil {
		m.FilmShowPeopleSaved = rec.PeopleSaved
	}
	m.FilmShowMonth = rec.Month
	m.FilmShowYear = rec.Year
}

// ApplyUpdates merges a partial-update body into the report. The updatable
// field set is closed; unknown names are rejected at the boundary.
func ApplyUpdates(m *model.FilmShowReport, updates map[string]interface{}) error {
	for field, value := range updates {
		switch field {
		case "film_show_team":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowTeam = s
		case "film_show_state":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			state, err := region.Normalize(s)
			if err != nil {
				return err
			}
			m.FilmShowState = string(state)
		case "film_show_lga":
			p, err := optionalStringValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowLGA = p
		case "film_show_ward":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowWard = s
		case "film_show_village":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowVillage = s
		case "film_show_population":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowPopulation = p
		case "film_show_upg":
			p, err := optionalStringValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowUPG = p
		case "film_show_attendance":
			n, err := countValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowAttendance = n
		case "film_show_sd_cards":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowSDCards = p
		case "film_show_audio_bibles":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowAudioBibles = p
		case "film_show_people_saved":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowPeopleSaved = p
		case "film_show_date":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			date, err := ingest.ParseEventDate(s)
			if err != nil {
				return &ingest.InvalidFieldError{Field: field, Value: s}
			}
			m.FilmShowDate = date
			m.FilmShowYear = yearOf(date)
		case "film_show_month":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.FilmShowMonth = ingest.NormalizeMonth(s)
		default:
			return fmt.Errorf("unknown field: %s", field)
		}
	}
	return nil
}

func yearOf(canonicalDate string) int {
	if len(canonicalDate) < 4 {
		return 0
	}
	y, _ := strconv.Atoi(canonicalDate[:4])
	return y
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
