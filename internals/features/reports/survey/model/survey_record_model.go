package model

import "time"

// SurveyRecord is the demographic survey of one village. One record per
// (state, village); repeated uploads merge into it. Counts are nullable
// because an unsurveyed figure is unknown, not zero.
type SurveyRecord struct {
	SurveyID                    string    `gorm:"column:survey_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"survey_id"`
	SurveyState                 string    `gorm:"column:survey_state;type:varchar(32);not null;uniqueIndex:uq_survey_natural_key" json:"survey_state"`
	SurveyLGA                   *string   `gorm:"column:survey_lga;type:varchar(128)" json:"survey_lga"`
	SurveyWard                  *string   `gorm:"column:survey_ward;type:varchar(128)" json:"survey_ward"`
	SurveyVillage               string    `gorm:"column:survey_village;type:varchar(128);not null;uniqueIndex:uq_survey_natural_key" json:"survey_village"`
	SurveyChristianPopulation   *int      `gorm:"column:survey_christian_population" json:"survey_christian_population"`
	SurveyMuslimPopulation      *int      `gorm:"column:survey_muslim_population" json:"survey_muslim_population"`
	SurveyTraditionalPopulation *int      `gorm:"column:survey_traditional_population" json:"survey_traditional_population"`
	SurveyConverts              *int      `gorm:"column:survey_converts" json:"survey_converts"`
	SurveyTotalPopulation       *int      `gorm:"column:survey_total_population" json:"survey_total_population"`
	SurveyFilmAttendance        *int      `gorm:"column:survey_film_attendance" json:"survey_film_attendance"`
	SurveyPeopleGroup           *string   `gorm:"column:survey_people_group;type:varchar(128)" json:"survey_people_group"`
	SurveyPracticedReligion     *string   `gorm:"column:survey_practiced_religion;type:varchar(64)" json:"survey_practiced_religion"`
	SurveyCreatedAt             time.Time `gorm:"column:survey_created_at;autoCreateTime" json:"survey_created_at"`
	SurveyUpdatedAt             time.Time `gorm:"column:survey_updated_at;autoUpdateTime" json:"survey_updated_at"`
}

// TableName sets the table name for SurveyRecord
func (SurveyRecord) TableName() string {
	return "survey_records"
}
