package dto

import (
	"time"

	"haskenrayuwa_backend/internals/features/reports/discipleship/model"
)

// ============================
// Response DTO
// ============================

type DiscipleshipReportDTO struct {
	DiscipleshipID         string    `json:"discipleship_id"`
	DiscipleshipTeam       string    `json:"discipleship_team"`
	DiscipleshipState      string    `json:"discipleship_state"`
	DiscipleshipLGA        *string   `json:"discipleship_lga"`
	DiscipleshipWard       string    `json:"discipleship_ward"`
	DiscipleshipVillage    string    `json:"discipleship_village"`
	DiscipleshipPopulation *int      `json:"discipleship_population"`
	DiscipleshipUPG        *string   `json:"discipleship_upg"`
	DiscipleshipAttendance int       `json:"discipleship_attendance"`
	DiscipleshipSDCards    *int      `json:"discipleship_sd_cards"`
	DiscipleshipManuals    *int      `json:"discipleship_manuals_given"`
	DiscipleshipBibles     *int      `json:"discipleship_bibles_given"`
	DiscipleshipMonth      string    `json:"discipleship_month"`
	DiscipleshipYear       int       `json:"discipleship_year"`
	DiscipleshipCreatedAt  time.Time `json:"discipleship_created_at"`
	DiscipleshipUpdatedAt  time.Time `json:"discipleship_updated_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateDiscipleshipReportRequest struct {
	DiscipleshipTeam       string  `json:"discipleship_team" validate:"required"`
	DiscipleshipState      string  `json:"discipleship_state" validate:"required"`
	DiscipleshipLGA        *string `json:"discipleship_lga"`
	DiscipleshipWard       string  `json:"discipleship_ward" validate:"required"`
	DiscipleshipVillage    string  `json:"discipleship_village" validate:"required"`
	DiscipleshipPopulation *int    `json:"discipleship_population" validate:"omitempty,min=0"`
	DiscipleshipUPG        *string `json:"discipleship_upg"`
	DiscipleshipAttendance *int    `json:"discipleship_attendance" validate:"required,min=0"`
	DiscipleshipSDCards    *int    `json:"discipleship_sd_cards" validate:"omitempty,min=0"`
	DiscipleshipManuals    *int    `json:"discipleship_manuals_given" validate:"omitempty,min=0"`
	DiscipleshipBibles     *int    `json:"discipleship_bibles_given" validate:"omitempty,min=0"`
	DiscipleshipMonth      string  `json:"discipleship_month" validate:"required"`
}

// ============================
// Converter
// ============================

func ToDiscipleshipReportDTO(m model.DiscipleshipReport) DiscipleshipReportDTO {
	return DiscipleshipReportDTO{
		DiscipleshipID:         m.DiscipleshipID,
		DiscipleshipTeam:       m.DiscipleshipTeam,
		DiscipleshipState:      m.DiscipleshipState,
		DiscipleshipLGA:        m.DiscipleshipLGA,
		DiscipleshipWard:       m.DiscipleshipWard,
		DiscipleshipVillage:    m.DiscipleshipVillage,
		DiscipleshipPopulation: m.DiscipleshipPopulation,
		DiscipleshipUPG:        m.DiscipleshipUPG,
		DiscipleshipAttendance: m.DiscipleshipAttendance,
		DiscipleshipSDCards:    m.DiscipleshipSDCards,
		DiscipleshipManuals:    m.DiscipleshipManuals,
		DiscipleshipBibles:     m.DiscipleshipBibles,
		DiscipleshipMonth:      m.DiscipleshipMonth,
		DiscipleshipYear:       m.DiscipleshipYear,
		DiscipleshipCreatedAt:  m.DiscipleshipCreatedAt,
		DiscipleshipUpdatedAt:  m.DiscipleshipUpdatedAt,
	}
}

func ToDiscipleshipReportDTOs(models []model.DiscipleshipReport) []DiscipleshipReportDTO {
	out := make([]DiscipleshipReportDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToDiscipleshipReportDTO(m))
	}
	return out
}
