package dto

import (
	"time"

	"haskenrayuwa_backend/internals/features/reports/survey/model"
)

// ============================
// Response DTO
// ============================

type SurveyRecordDTO struct {
	SurveyID                    string    `json:"survey_id"`
	SurveyState                 string    `json:"survey_state"`
	SurveyLGA                   *string   `json:"survey_lga"`
	SurveyWard                  *string   `json:"survey_ward"`
	SurveyVillage               string    `json:"survey_village"`
	SurveyChristianPopulation   *int      `json:"survey_christian_population"`
	SurveyMuslimPopulation      *int      `json:"survey_muslim_population"`
	SurveyTraditionalPopulation *int      `json:"survey_traditional_population"`
	SurveyConverts              *int      `json:"survey_converts"`
	SurveyTotalPopulation       *int      `json:"survey_total_population"`
	SurveyFilmAttendance        *int      `json:"survey_film_attendance"`
	SurveyPeopleGroup           *string   `json:"survey_people_group"`
	SurveyPracticedReligion     *string   `json:"survey_practiced_religion"`
	SurveyCreatedAt             time.Time `json:"survey_created_at"`
	SurveyUpdatedAt             time.Time `json:"survey_updated_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateSurveyRecordRequest struct {
	SurveyState                 string  `json:"survey_state" validate:"required"`
	SurveyLGA                   *string `json:"survey_lga"`
	SurveyWard                  *string `json:"survey_ward"`
	SurveyVillage               string  `json:"survey_village" validate:"required"`
	SurveyChristianPopulation   *int    `json:"survey_christian_population" validate:"omitempty,min=0"`
	SurveyMuslimPopulation      *int    `json:"survey_muslim_population" validate:"omitempty,min=0"`
	SurveyTraditionalPopulation *int    `json:"survey_traditional_population" validate:"omitempty,min=0"`
	SurveyConverts              *int    `json:"survey_converts" validate:"omitempty,min=0"`
	SurveyTotalPopulation       *int    `json:"survey_total_population" validate:"omitempty,min=0"`
	SurveyFilmAttendance        *int    `json:"survey_film_attendance" validate:"omitempty,min=0"`
	SurveyPeopleGroup           *string `json:"survey_people_group"`
	SurveyPracticedReligion     *string `json:"survey_practiced_religion" validate:"omitempty,oneof=Christianity Islam Traditional Mixed Other"`
}

// ============================
// Aggregation DTO
// ============================

// SurveyTotalsDTO carries SUMs over the records matched by the current
// filter. NULL counts do not contribute, so the totals reflect only
// villages where the figure was actually surveyed.
type SurveyTotalsDTO struct {
	TotalChristianPopulation   int64 `gorm:"column:total_christian_population" json:"total_christian_population"`
	TotalMuslimPopulation      int64 `gorm:"column:total_muslim_population" json:"total_muslim_population"`
	TotalTraditionalPopulation int64 `gorm:"column:total_traditional_population" json:"total_traditional_population"`
	TotalConverts              int64 `gorm:"column:total_converts" json:"total_converts"`
	TotalPopulation            int64 `gorm:"column:total_population" json:"total_population"`
	TotalFilmAttendance        int64 `gorm:"column:total_film_attendance" json:"total_film_attendance"`
}

// ============================
// Converter
// ============================

func ToSurveyRecordDTO(m model.SurveyRecord) SurveyRecordDTO {
	return SurveyRecordDTO{
		SurveyID:                    m.SurveyID,
		SurveyState:                 m.SurveyState,
		SurveyLGA:                   m.SurveyLGA,
		SurveyWard:                  m.SurveyWard,
		SurveyVillage:               m.SurveyVillage,
		SurveyChristianPopulation:   m.SurveyChristianPopulation,
		SurveyMuslimPopulation:      m.SurveyMuslimPopulation,
		SurveyTraditionalPopulation: m.SurveyTraditionalPopulation,
		SurveyConverts:              m.SurveyConverts,
		SurveyTotalPopulation:       m.SurveyTotalPopulation,
		SurveyFilmAttendance:        m.SurveyFilmAttendance,
		SurveyPeopleGroup:           m.SurveyPeopleGroup,
		SurveyPracticedReligion:     m.SurveyPracticedReligion,
		SurveyCreatedAt:             m.SurveyCreatedAt,
		SurveyUpdatedAt:             m.SurveyUpdatedAt,
	}
}

func ToSurveyRecordDTOs(models []model.SurveyRecord) []SurveyRecordDTO {
	out := make([]SurveyRecordDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToSurveyRecordDTO(m))
	}
	return out
}
