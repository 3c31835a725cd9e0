package model

import (
	"time"

	"gorm.io/datatypes"
)

// IngestLog records one upload batch per report kind: what went in, what
// merged, and the row-level trouble as raw JSON for the dashboard audit view.
type IngestLog struct {
	IngestLogID        string         `gorm:"column:ingest_log_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"ingest_log_id"`
	IngestLogKind      string         `gorm:"column:ingest_log_kind;type:varchar(32);not null" json:"ingest_log_kind"`
	IngestLogFileCount int            `gorm:"column:ingest_log_file_count;not null" json:"ingest_log_file_count"`
	IngestLogInserted  int            `gorm:"column:ingest_log_inserted;not null" json:"ingest_log_inserted"`
	IngestLogMerged    int            `gorm:"column:ingest_log_merged;not null" json:"ingest_log_merged"`
	IngestLogSkipped   int            `gorm:"column:ingest_log_skipped;not null" json:"ingest_log_skipped"`
	IngestLogFailed    int            `gorm:"column:ingest_log_failed;not null" json:"ingest_log_failed"`
	IngestLogIssues    datatypes.JSON `gorm:"column:ingest_log_issues;type:jsonb" json:"ingest_log_issues"`
	IngestLogCreatedAt time.Time      `gorm:"column:ingest_log_created_at;autoCreateTime" json:"ingest_log_created_at"`
}

// TableName sets the table name for IngestLog
func (IngestLog) TableName() string {
	return "ingest_logs"
}
