package dto

import (
	"time"

	"haskenrayuwa_backend/internals/features/home/links/model"
)

// ============================
// Response DTO
// ============================

type LinkDTO struct {
	LinkID          string    `json:"link_id"`
	LinkURL         string    `json:"link_url"`
	LinkMediaType   string    `json:"link_media_type"`
	LinkTitle       *string   `json:"link_title"`
	LinkDescription *string   `json:"link_description"`
	LinkCreatedAt   time.Time `json:"link_created_at"`
	LinkUpdatedAt   time.Time `json:"link_updated_at"`
}

// ============================
// Create / Update Request DTO
// ============================

type CreateLinkRequest struct {
	LinkURL string `json:"link_url" validate:"required,url,max=512"`
}

// ============================
// Converter
// ============================

func ToLinkDTO(m model.Link) LinkDTO {
	return LinkDTO{
		LinkID:          m.LinkID,
		LinkURL:         m.LinkURL,
		LinkMediaType:   m.LinkMediaType,
		LinkTitle:       m.LinkTitle,
		LinkDescription: m.LinkDescription,
		LinkCreatedAt:   m.LinkCreatedAt,
		LinkUpdatedAt:   m.LinkUpdatedAt,
	}
}

func ToLinkDTOs(models []model.Link) []LinkDTO {
	out := make([]LinkDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToLinkDTO(m))
	}
	return out
}
