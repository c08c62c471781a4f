// Package notify tells other systems that an audit finished. Delivery is
// best effort: a failed notification is logged and never fails the audit.
package notify

import (
	"context"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
)

type Event struct {
	AuditID          string             `json:"audit_id"`
	DossierID        string             `json:"dossier_id"`
	Stage            string             `json:"stage,omitempty"`
	Status           models.AuditStatus `json:"status"`
	StagesFound      int                `json:"stages_found"`
	ProblemsFound    int                `json:"problems_found"`
	TotalPages       int                `json:"total_pages"`
	ProcessingTimeMS int64              `json:"processing_time_ms"`
	FinishedAt       time.Time          `json:"finished_at"`
}

// EventFromRecord builds the event for a finalized record.
func EventFromRecord(rec *models.AuditRecord) Event {
	ev := Event{
		AuditID:          rec.ID,
		DossierID:        rec.DossierID,
		Stage:            rec.Stage,
		Status:           rec.Status,
		StagesFound:      rec.StagesFound,
		ProblemsFound:    rec.ProblemsFound,
		TotalPages:       rec.TotalPages,
		ProcessingTimeMS: rec.ProcessingTimeMS,
	}
	if rec.FinishedAt != nil {
		ev.FinishedAt = *rec.FinishedAt
	}
	return ev
}

type Notifier interface {
	AuditCompleted(ctx context.Context, ev Event) error
}

// FireAndForget delivers ev in the background, detached from ctx
// cancellation and bounded by timeout. The returned channel closes when the
// attempt is over.
func FireAndForget(ctx context.Context, n Notifier, ev Event, timeout time.Duration, log logging.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		if err := n.AuditCompleted(ctx, ev); err != nil {
			log.Warn(ctx, "audit notification not delivered", "audit_id", ev.AuditID, "error", err)
		}
	}()
	return done
}

// LogNotifier only logs events.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("module", "notify")}
}

func (n *LogNotifier) AuditCompleted(ctx context.Context, ev Event) error {
	n.log.Info(ctx, "audit completed",
		"audit_id", ev.AuditID,
		"dossier_id", ev.DossierID,
		"status", ev.Status,
		"stages_found", ev.StagesFound,
		"problems_found", ev.ProblemsFound,
	)
	return nil
}
