package model

import "time"

// DiscipleshipReport is one month of follow-up visits by a team in one
// village. There is no exact visit date; the month label (stored uppercase)
// closes the natural key instead.
type DiscipleshipReport struct {
	DiscipleshipID          string    `gorm:"column:discipleship_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"discipleship_id"`
	DiscipleshipTeam        string    `gorm:"column:discipleship_team;type:varchar(64);not null;uniqueIndex:uq_discipleship_natural_key" json:"discipleship_team"`
	DiscipleshipState       string    `gorm:"column:discipleship_state;type:varchar(32);not null;uniqueIndex:uq_discipleship_natural_key" json:"discipleship_state"`
	DiscipleshipLGA         *string   `gorm:"column:discipleship_lga;type:varchar(128)" json:"discipleship_lga"`
	DiscipleshipWard        string    `gorm:"column:discipleship_ward;type:varchar(128);not null;uniqueIndex:uq_discipleship_natural_key" json:"discipleship_ward"`
	DiscipleshipVillage     string    `gorm:"column:discipleship_village;type:varchar(128);not null;uniqueIndex:uq_discipleship_natural_key" json:"discipleship_village"`
	DiscipleshipPopulation  *int      `gorm:"column:discipleship_population" json:"discipleship_population"`
	DiscipleshipUPG         *string   `gorm:"column:discipleship_upg;type:varchar(128)" json:"discipleship_upg"`
	DiscipleshipAttendance  int       `gorm:"column:discipleship_attendance;not null" json:"discipleship_attendance"`
	DiscipleshipSDCards     *int      `gorm:"column:discipleship_sd_cards" json:"discipleship_sd_cards"`
	DiscipleshipManuals     *int      `gorm:"column:discipleship_manuals_given" json:"discipleship_manuals_given"`
	DiscipleshipBibles      *int      `gorm:"column:discipleship_bibles_given" json:"discipleship_bibles_given"`
	DiscipleshipMonth       string    `gorm:"column:discipleship_month;type:varchar(16);not null;uniqueIndex:uq_discipleship_natural_key" json:"discipleship_month"`
	DiscipleshipYear        int       `gorm:"column:discipleship_year;not null" json:"discipleship_year"`
	DiscipleshipCreatedAt   time.Time `gorm:"column:discipleship_created_at;autoCreateTime" json:"discipleship_created_at"`
	DiscipleshipUpdatedAt   time.Time `gorm:"column:discipleship_updated_at;autoUpdateTime" json:"discipleship_updated_at"`
}

// TableName sets the table name for DiscipleshipReport
func (DiscipleshipReport) TableName() string {
	return "discipleship_reports"
}
