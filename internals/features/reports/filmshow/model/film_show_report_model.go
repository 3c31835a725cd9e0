package model

import "time"

// FilmShowReport is one screening event reported by a field team. The
// composite unique index is the natural key used for upsert reconciliation:
// the same team, place and date is the same real-world screening.
type FilmShowReport struct {
	FilmShowID          string    `gorm:"column:film_show_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"film_show_id"`
	FilmShowTeam        string    `gorm:"column:film_show_team;type:varchar(64);not null;uniqueIndex:uq_film_show_natural_key" json:"film_show_team"`
	FilmShowState       string    `gorm:"column:film_show_state;type:varchar(32);not null;uniqueIndex:uq_film_show_natural_key" json:"film_show_state"`
	FilmShowLGA         *string   `gorm:"column:film_show_lga;type:varchar(128)" json:"film_show_lga"`
	FilmShowWard        string    `gorm:"column:film_show_ward;type:varchar(128);not null;uniqueIndex:uq_film_show_natural_key" json:"film_show_ward"`
	FilmShowVillage     string    `gorm:"column:film_show_village;type:varchar(128);not null;uniqueIndex:uq_film_show_natural_key" json:"film_show_village"`
	FilmShowPopulation  *int      `gorm:"column:film_show_population" json:"film_show_population"`
	FilmShowUPG         *string   `gorm:"column:film_show_upg;type:varchar(128)" json:"film_show_upg"`
	FilmShowAttendance  int       `gorm:"column:film_show_attendance;not null" json:"film_show_attendance"`
	FilmShowSDCards     *int      `gorm:"column:film_show_sd_cards" json:"film_show_sd_cards"`
	FilmShowAudioBibles *int      `gorm:"column:film_show_audio_bibles" json:"film_show_audio_bibles"`
	FilmShowPeopleSaved *int      `gorm:"column:film_show_people_saved" json:"film_show_people_saved"`
	FilmShowDate        string    `gorm:"column:film_show_date;type:varchar(10);not null;uniqueIndex:uq_film_show_natural_key" json:"film_show_date"`
	FilmShowMonth       string    `gorm:"column:film_show_month;type:varchar(16);not null;index" json:"film_show_month"`
	FilmShowYear        int       `gorm:"column:film_show_year;not null" json:"film_show_year"`
	FilmShowCreatedAt   time.Time `gorm:"column:film_show_created_at;autoCreateTime" json:"film_show_created_at"`
	FilmShowUpdatedAt   time.Time `gorm:"column:film_show_updated_at;autoUpdateTime" json:"film_show_updated_at"`
}

// TableName sets the table name for FilmShowReport
func (FilmShowReport) TableName() string {
	return "film_show_reports"
}
