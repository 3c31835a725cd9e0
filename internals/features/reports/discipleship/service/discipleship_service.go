package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/discipleship/dto"
	"haskenrayuwa_backend/internals/features/reports/discipleship/model"
	"haskenrayuwa_backend/internals/features/reports/ingest"
	"haskenrayuwa_backend/internals/features/reports/region"
)

// DiscipleshipRecord is a fully-normalized visit report. Nil pointers mean
// the source row did not mention the field.
type DiscipleshipRecord struct {
	Team       string
	State      region.State
	LGA        *string
	Ward       string
	Village    string
	Population *int
	UPG        *string
	Attendance int
	SDCards    *int
	Manuals    *int
	Bibles     *int
	Month      string
	Year       int
}

// NormalizeRow converts one spreadsheet row into a canonical record.
// Unlike film shows there is no event date; the month label is required
// and closes the natural key.
func NormalizeRow(row ingest.Row) (DiscipleshipRecord, error) {
	var rec DiscipleshipRecord

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
	manuals, err := row.OptionalCount("Manuals Given")
	if err != nil {
		return rec, err
	}
	bibles, err := row.OptionalCount("Bibles Given")
	if err != nil {
		return rec, err
	}

	rec = DiscipleshipRecord{
		Team:       team,
		State:      state,
		LGA:        row.OptionalText("LGA"),
		Ward:       ward,
		Village:    village,
		Population: population,
		UPG:        row.OptionalText("UPG"),
		Attendance: attendance,
		SDCards:    sdCards,
		Manuals:    manuals,
		Bibles:     bibles,
		Month:      ingest.NormalizeMonth(month),
		Year:       time.Now().Year(),
	}
	return rec, nil
}

// FromCreateRequest normalizes a manual-entry body into the same canonical
// shape the upload path produces.
func FromCreateRequest(body dto.CreateDiscipleshipReportRequest) (DiscipleshipRecord, error) {
	var rec DiscipleshipRecord

	state, err := region.Normalize(body.DiscipleshipState)
	if err != nil {
		return rec, err
	}

	rec = DiscipleshipRecord{
		Team:       body.DiscipleshipTeam,
		State:      state,
		LGA:        body.DiscipleshipLGA,
		Ward:       body.DiscipleshipWard,
		Village:    body.DiscipleshipVillage,
		Population: body.DiscipleshipPopulation,
		UPG:        body.DiscipleshipUPG,
		Attendance: *body.DiscipleshipAttendance,
		SDCards:    body.DiscipleshipSDCards,
		Manuals:    body.DiscipleshipManuals,
		Bibles:     body.DiscipleshipBibles,
		Month:      ingest.NormalizeMonth(body.DiscipleshipMonth),
		Year:       time.Now().Year(),
	}
	return rec, nil
}

// Upsert inserts the record or merges it into the report sharing its
// natural key (team, state, ward, village, month).
func Upsert(tx *gorm.DB, rec DiscipleshipRecord) (ingest.Outcome, error) {
	var existing model.DiscipleshipReport
	err := tx.Where(
		"discipleship_team = ? AND discipleship_state = ? AND discipleship_ward = ? AND discipleship_village = ? AND discipleship_month = ?",
		rec.Team, string(rec.State), rec.Ward, rec.Village, rec.Month,
	).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		report := newReport(rec)
		if err := tx.Create(&report).Error; err != nil {
			return 0, &ingest.StorageError{Op: "insert discipleship report", Err: err}
		}
		return ingest.OutcomeInserted, nil
	}
	if err != nil {
		return 0, &ingest.StorageError{Op: "match discipleship report", Err: err}
	}

	mergeInto(&existing, rec)
	if err := tx.Save(&existing).Error; err != nil {
		return 0, &ingest.StorageError{Op: "merge discipleship report", Err: err}
	}
	return ingest.OutcomeMerged, nil
}

// Insert creates a report without reconciliation, for manual entry.
func Insert(db *gorm.DB, rec DiscipleshipRecord) (model.DiscipleshipReport, error) {
	report := newReport(rec)
	if err := db.Create(&report).Error; err != nil {
		return model.DiscipleshipReport{}, err
	}
	return report, nil
}

func newReport(rec DiscipleshipRecord) model.DiscipleshipReport {
	return model.DiscipleshipReport{
		DiscipleshipTeam:       rec.Team,
		DiscipleshipState:      string(rec.State),
		DiscipleshipLGA:        rec.LGA,
		DiscipleshipWard:       rec.Ward,
		DiscipleshipVillage:    rec.Village,
		DiscipleshipPopulation: rec.Population,
		DiscipleshipUPG:        rec.UPG,
		DiscipleshipAttendance: rec.Attendance,
		DiscipleshipSDCards:    rec.SDCards,
		DiscipleshipManuals:    rec.Manuals,
		DiscipleshipBibles:     rec.Bibles,
		DiscipleshipMonth:      rec.Month,
		DiscipleshipYear:       rec.Year,
	}
}

// mergeInto overwrites the fields the canonical record carries; natural-key
// fields stay as matched.
func mergeInto(m *model.DiscipleshipReport, rec DiscipleshipRecord) {
	if rec.LGA != nil {
		m.DiscipleshipLGA = rec.LGA
	}
	if rec.Population != nil {
		m.DiscipleshipPopulation = rec.Population
	}
	if rec.UPG != nil {
		m.DiscipleshipUPG = rec.UPG
	}
	m.DiscipleshipAttendance = rec.Attendance
	if rec.SDCards != nil {
		m.DiscipleshipSDCards = rec.SDCards
	}
	if rec.Manuals != nil {
		m.DiscipleshipManuals = rec.Manuals
	}
	if rec.Bibles != nil {
		m.DiscipleshipBibles = rec.Bibles
	}
	m.DiscipleshipYear = rec.Year
}

// ApplyUpdates merges a partial-update body into the report; the field set
// is closed and unknown names are rejected.
func ApplyUpdates(m *model.DiscipleshipReport, updates map[string]interface{}) error {
	for field, value := range updates {
		switch field {
		case "discipleship_team":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipTeam = s
		case "discipleship_state":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			state, err := region.Normalize(s)
			if err != nil {
				return err
			}
			m.DiscipleshipState = string(state)
		case "discipleship_lga":
			p, err := optionalStringValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipLGA = p
		case "discipleship_ward":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipWard = s
		case "discipleship_village":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipVillage = s
		case "discipleship_population":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipPopulation = p
		case "discipleship_upg":
			p, err := optionalStringValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipUPG = p
		case "discipleship_attendance":
			n, err := countValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipAttendance = n
		case "discipleship_sd_cards":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipSDCards = p
		case "discipleship_manuals_given":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipManuals = p
		case "discipleship_bibles_given":
			p, err := optionalCountValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipBibles = p
		case "discipleship_month":
			s, err := stringValue(field, value)
			if err != nil {
				return err
			}
			m.DiscipleshipMonth = ingest.NormalizeMonth(s)
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
