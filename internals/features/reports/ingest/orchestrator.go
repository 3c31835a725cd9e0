package ingest

import (
	"encoding/json"
	"log"
	"mime/multipart"

	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/ingest/model"
)

// RowHandler normalizes one row and applies it to the store. Returning a
// SkipRowError drops the row without failing the batch; any other error is
// recorded as a row failure.
type RowHandler func(row Row) (Outcome, error)

// Runner drives the ingestion pipeline for one report kind: file by file,
// row by row, strictly sequential. Two rows in one file may share a natural
// key (a correction followed by its final value), so row N+1 must be matched
// against row N's already-applied effects.
type Runner struct {
	db   *gorm.DB
	kind string
}

func NewRunner(db *gorm.DB, kind string) *Runner {
	return &Runner{db: db, kind: kind}
}

// ProcessFiles parses every uploaded workbook and feeds each row through
// the handler, accumulating per-row failures instead of aborting. Source
// files are transient and removed once parsed, success or not.
func (r *Runner) ProcessFiles(files []*multipart.FileHeader, handle RowHandler) *Summary {
	summary := NewSummary()

	for _, fh := range files {
		r.processFile(fh, handle, summary)
	}

	summary.Message = "File(s) uploaded and data saved successfully."
	r.writeLog(len(files), summary)
	return summary
}

func (r *Runner) processFile(fh *multipart.FileHeader, handle RowHandler, summary *Summary) {
	path, err := SaveUpload(fh)
	if err != nil {
		summary.recordFailure(fh.Filename, 0, err.Error())
		return
	}
	defer RemoveUpload(path)

	rows, err := ParseWorkbook(path, fh.Filename)
	if err != nil {
		summary.recordFailure(fh.Filename, 0, err.Error())
		return
	}

	for _, row := range rows {
		outcome, err := handle(row)
		switch {
		case err == nil:
			summary.recordOutcome(outcome)
		case IsSkip(err):
			summary.recordSkip(row.File, row.Index, err.Error())
		default:
			summary.recordFailure(row.File, row.Index, err.Error())
		}
	}
}

// writeLog persists the batch audit row. A logging failure never fails
// the upload itself.
func (r *Runner) writeLog(fileCount int, summary *Summary) {
	if r.db == nil {
		return
	}
	issues, err := json.Marshal(map[string]interface{}{
		"errors": summary.Errors,
		"skips":  summary.Skips,
	})
	if err != nil {
		log.Printf("[INGEST] could not marshal issues: %v", err)
		issues = []byte("{}")
	}

	entry := model.IngestLog{
		IngestLogKind:      r.kind,
		IngestLogFileCount: fileCount,
		IngestLogInserted:  summary.Inserted,
		IngestLogMerged:    summary.Merged,
		IngestLogSkipped:   summary.Skipped,
		IngestLogFailed:    summary.Failed,
		IngestLogIssues:    issues,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		log.Printf("[INGEST] could not write ingest log: %v", err)
	}
}
