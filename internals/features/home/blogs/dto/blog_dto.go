package dto

import (
	"time"

	"haskenrayuwa_backend/internals/features/home/blogs/model"
)

// ============================
// Response DTO
// ============================

type BlogDTO struct {
	BlogID        string    `json:"blog_id"`
	BlogTitle     string    `json:"blog_title"`
	BlogAuthor    string    `json:"blog_author"`
	BlogContent   string    `json:"blog_content"`
	BlogDate      time.Time `json:"blog_date"`
	BlogCreatedAt time.Time `json:"blog_created_at"`
	BlogUpdatedAt time.Time `json:"blog_updated_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateBlogRequest struct {
	BlogTitle   string `json:"blog_title" validate:"required,max=255"`
	BlogAuthor  string `json:"blog_author" validate:"required,max=128"`
	BlogContent string `json:"blog_content" validate:"required"`
}

// ============================
// Converter
// ============================

func ToBlogDTO(m model.Blog) BlogDTO {
	return BlogDTO{
		BlogID:        m.BlogID,
		BlogTitle:     m.BlogTitle,
		BlogAuthor:    m.BlogAuthor,
		BlogContent:   m.BlogContent,
		BlogDate:      m.BlogDate,
		BlogCreatedAt: m.BlogCreatedAt,
		BlogUpdatedAt: m.BlogUpdatedAt,
	}
}

func ToBlogDTOs(models []model.Blog) []BlogDTO {
	out := make([]BlogDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToBlogDTO(m))
	}
	return out
}
