package models

import "time"

type AuditStatus string

const (
	AuditRunning   AuditStatus = "running"
	AuditCompleted AuditStatus = "completed"
	AuditFailed    AuditStatus = "failed"
	AuditCancelled AuditStatus = "cancelled"
)

// Terminal reports whether no further updates are allowed.
func (s AuditStatus) Terminal() bool {
	return s == AuditCompleted || s == AuditFailed || s == AuditCancelled
}

// AuditRecord is one audit run over a dossier, or over one stage of it
// when Stage is set. Rows are appended as running and finalized once.
type AuditRecord struct {
	ID               string
	DossierID        string
	Stage            string
	ProductName      string
	Manufacturer     string
	FileName         string
	TotalPages       int
	StagesFound      int
	ProblemsFound    int
	Status           AuditStatus
	ProcessingTimeMS int64
	CreatedAt        time.Time
	FinishedAt       *time.Time

	Outcomes []StageOutcome
}

type OutcomeKind string

const (
	OutcomeCompleted          OutcomeKind = "completed"
	OutcomePartialFailure     OutcomeKind = "partial_failure"
	OutcomeFailed             OutcomeKind = "failed"
	OutcomeCancelled          OutcomeKind = "cancelled"
	OutcomeSkippedTimeout     OutcomeKind = "skipped_timeout"
	OutcomeSkippedNoDocuments OutcomeKind = "skipped_no_documents"
)

// StageOutcome is the per-stage result attached to a finalized audit.
type StageOutcome struct {
	AuditID          string
	Stage            string
	Outcome          OutcomeKind
	FailedDocumentID string
	ErrorKind        string
	Message          string
	ItemsEvaluated   int
	ProblemsFound    int
	// Incomplete lists in-scope items the model gave no verdict for.
	Incomplete []string
}

type Verdict string

const (
	VerdictPass        Verdict = "pass"
	VerdictFail        Verdict = "fail"
	VerdictObservation Verdict = "observation"
)

// Finding is one model verdict for one dossier item. It is never stored
// as-is; it is folded into item statuses and audit counters.
type Finding struct {
	Stage       string
	ItemID      string
	Verdict     Verdict
	Observation string
	DocumentIDs []string
}
