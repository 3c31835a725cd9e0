package model

import "time"

type Blog struct {
	BlogID        string    `gorm:"column:blog_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"blog_id"`
	BlogTitle     string    `gorm:"column:blog_title;type:varchar(255);not null" json:"blog_title"`
	BlogAuthor    string    `gorm:"column:blog_author;type:varchar(128);not null" json:"blog_author"`
	BlogContent   string    `gorm:"column:blog_content;type:text;not null" json:"blog_content"`
	BlogDate      time.Time `gorm:"column:blog_date;not null" json:"blog_date"`
	BlogCreatedAt time.Time `gorm:"column:blog_created_at;autoCreateTime" json:"blog_created_at"`
	BlogUpdatedAt time.Time `gorm:"column:blog_updated_at;autoUpdateTime" json:"blog_updated_at"`
}

// TableName sets the table name for Blog
func (Blog) TableName() string {
	return "blogs"
}
