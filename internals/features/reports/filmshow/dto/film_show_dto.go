package dto

import (
	"time"

	"haskenrayuwa_backend/internals/features/reports/filmshow/model"
)

// ============================
// Response DTO
// ============================

type FilmShowReportDTO struct {
	FilmShowID          string    `json:"film_show_id"`
	FilmShowTeam        string    `json:"film_show_team"`
	FilmShowState       string    `json:"film_show_state"`
	FilmShowLGA         *string   `json:"film_show_lga"`
	FilmShowWard        string    `json:"film_show_ward"`
	FilmShowVillage     string    `json:"film_show_village"`
	FilmShowPopulation  *int      `json:"film_show_population"`
	FilmShowUPG         *string   `json:"film_show_upg"`
	FilmShowAttendance  int       `json:"film_show_attendance"`
	FilmShowSDCards     *int      `json:"film_show_sd_cards"`
	FilmShowAudioBibles *int      `json:"film_show_audio_bibles"`
	FilmShowPeopleSaved *int      `json:"film_show_people_saved"`
	FilmShowDate        string    `json:"film_show_date"`
	FilmShowMonth       string    `json:"film_show_month"`
	FilmShowYear        int       `json:"film_show_year"`
	FilmShowCreatedAt   time.Time `json:"film_show_created_at"`
	FilmShowUpdatedAt   time.Time `json:"film_show_updated_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateFilmShowReportRequest struct {
	FilmShowTeam        string  `json:"film_show_team" validate:"required"`
	FilmShowState       string  `json:"film_show_state" validate:"required"`
	FilmShowLGA         *string `json:"film_show_lga"`
	FilmShowWard        string  `json:"film_show_ward" validate:"required"`
	FilmShowVillage     string  `json:"film_show_village" validate:"required"`
	FilmShowPopulation  *int    `json:"film_show_population" validate:"omitempty,min=0"`
	FilmShowUPG         *string `json:"film_show_upg"`
	FilmShowAttendance  *int    `json:"film_show_attendance" validate:"required,min=0"`
	FilmShowSDCards     *int    `json:"film_show_sd_cards" validate:"omitempty,min=0"`
	FilmShowAudioBibles *int    `json:"film_show_audio_bibles" validate:"omitempty,min=0"`
	FilmShowPeopleSaved *int    `json:"film_show_people_saved" validate:"omitempty,min=0"`
	FilmShowDate        string  `json:"film_show_date" validate:"required"`
	FilmShowMonth       string  `json:"film_show_month" validate:"required"`
}

// ============================
// Converter
// ============================

func ToFilmShowReportDTO(m model.FilmShowReport) FilmShowReportDTO {
	return FilmShowReportDTO{
		FilmShowID:          m.FilmShowID,
		FilmShowTeam:        m.FilmShowTeam,
		FilmShowState:       m.FilmShowState,
		FilmShowLGA:         m.FilmShowLGA,
		FilmShowWard:        m.FilmShowWard,
		FilmShowVillage:     m.FilmShowVillage,
		FilmShowPopulation:  m.FilmShowPopulation,
		FilmShowUPG:         m.FilmShowUPG,
		FilmShowAttendance:  m.FilmShowAttendance,
		FilmShowSDCards:     m.FilmShowSDCards,
		FilmShowAudioBibles: m.FilmShowAudioBibles,
		FilmShowPeopleSaved: m.FilmShowPeopleSaved,
		FilmShowDate:        m.FilmShowDate,
		FilmShowMonth:       m.FilmShowMonth,
		FilmShowYear:        m.FilmShowYear,
		FilmShowCreatedAt:   m.FilmShowCreatedAt,
		FilmShowUpdatedAt:   m.FilmShowUpdatedAt,
	}
}

func ToFilmShowReportDTOs(models []model.FilmShowReport) []FilmShowReportDTO {
	out := make([]FilmShowReportDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToFilmShowReportDTO(m))
	}
	return out
}
