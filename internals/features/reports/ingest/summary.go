package ingest

// Outcome is the result of applying one normalized row to the store.
type Outcome int

const (
	OutcomeInserted Outcome = iota
	OutcomeMerged
)

// RowIssue pins a failure or skip to its file and spreadsheet row.
type RowIssue struct {
	File   string `json:"file"`
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Summary is the batch result returned to the caller. A batch request
// always answers HTTP 200; row-level trouble lives here, not in the
// status code.
type Summary struct {
	Message  string     `json:"message"`
	Inserted int        `json:"inserted"`
	Merged   int        `json:"merged"`
	Skipped  int        `json:"skipped"`
	Failed   int        `json:"failed"`
	Errors   []RowIssue `json:"errors"`
	Skips    []RowIssue `json:"skips"`
}

func NewSummary() *Summary {
	return &Summary{
		Errors: []RowIssue{},
		Skips:  []RowIssue{},
	}
}

func (s *Summary) recordOutcome(out Outcome) {
	switch out {
	case OutcomeInserted:
		s.Inserted++
	case OutcomeMerged:
		s.Merged++
	}
}

func (s *Summary) recordFailure(file string, row int, reason string) {
	s.Failed++
	s.Errors = append(s.Errors, RowIssue{File: file, Row: row, Reason: reason})
}

func (s *Summary) recordSkip(file string, row int, reason string) {
	s.Skipped++
	s.Skips = append(s.Skips, RowIssue{File: file, Row: row, Reason: reason})
}
