package ingest

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RequiredFieldMissingError marks a row whose required column is blank.
type RequiredFieldMissingError struct {
	Field string
}

func (e *RequiredFieldMissingError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// InvalidFieldError marks a cell that is present but unparseable. Optional
// fields may be absent, but never garbage.
type InvalidFieldError struct {
	Field string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value %q for field %q", e.Value, e.Field)
}

// SkipRowError signals that a row should be dropped without failing the
// batch. Skips are counted and surfaced in the summary, never lost.
type SkipRowError struct {
	Reason string
}

func (e *SkipRowError) Error() string {
	return e.Reason
}

// Skip builds a skip signal for the given reason.
func Skip(format string, args ...interface{}) error {
	return &SkipRowError{Reason: fmt.Sprintf(format, args...)}
}

// IsSkip reports whether err is a row-skip signal rather than a failure.
func IsSkip(err error) bool {
	var s *SkipRowError
	return errors.As(err, &s)
}

// StorageError wraps a collaborator failure from the persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsDuplicateKey reports a natural-key collision rejected by the composite
// unique index.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
