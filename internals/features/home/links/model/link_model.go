package model

import "time"

// Link is one entry in the curated media library. URL is unique; posting
// the same URL twice is a conflict, not a second row.
type Link struct {
	LinkID          string    `gorm:"column:link_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"link_id"`
	LinkURL         string    `gorm:"column:link_url;type:varchar(512);not null;uniqueIndex:uq_link_url" json:"link_url"`
	LinkMediaType   string    `gorm:"column:link_media_type;type:varchar(16);not null;index" json:"link_media_type"`
	LinkTitle       *string   `gorm:"column:link_title;type:varchar(255)" json:"link_title"`
	LinkDescription *string   `gorm:"column:link_description;type:text" json:"link_description"`
	LinkCreatedAt   time.Time `gorm:"column:link_created_at;autoCreateTime" json:"link_created_at"`
	LinkUpdatedAt   time.Time `gorm:"column:link_updated_at;autoUpdateTime" json:"link_updated_at"`
}

// TableName sets the table name for Link
func (Link) TableName() string {
	return "links"
}
