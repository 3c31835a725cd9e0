package model

import "time"

// User is the deduplicated identity behind contact and volunteer
// submissions. One row per email regardless of how many forms were sent.
type User struct {
	UserID        string    `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserFullName  string    `gorm:"column:user_full_name;type:varchar(128);not null" json:"user_full_name"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_user_email" json:"user_email"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}

// ContactUser is one contact-form submission.
type ContactUser struct {
	ContactID        string    `gorm:"column:contact_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"contact_id"`
	ContactFullName  string    `gorm:"column:contact_full_name;type:varchar(128);not null" json:"contact_full_name"`
	ContactEmail     string    `gorm:"column:contact_email;type:varchar(255);not null;index" json:"contact_email"`
	ContactMessage   string    `gorm:"column:contact_message;type:text;not null" json:"contact_message"`
	ContactCreatedAt time.Time `gorm:"column:contact_created_at;autoCreateTime" json:"contact_created_at"`
}

// TableName sets the table name for ContactUser
func (ContactUser) TableName() string {
	return "contact"
}

// VolunteerUser is one volunteer sign-up.
type VolunteerUser struct {
	VolunteerID          string    `gorm:"column:volunteer_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"volunteer_id"`
	VolunteerFullName    string    `gorm:"column:volunteer_full_name;type:varchar(128);not null" json:"volunteer_full_name"`
	VolunteerEmail       string    `gorm:"column:volunteer_email;type:varchar(255);not null;index" json:"volunteer_email"`
	VolunteerPhoneNumber *string   `gorm:"column:volunteer_phone_number;type:varchar(32)" json:"volunteer_phone_number"`
	VolunteerAddress     *string   `gorm:"column:volunteer_address;type:varchar(255)" json:"volunteer_address"`
	VolunteerCreatedAt   time.Time `gorm:"column:volunteer_created_at;autoCreateTime" json:"volunteer_created_at"`
}

// TableName sets the table name for VolunteerUser
func (VolunteerUser) TableName() string {
	return "volunteer"
}
