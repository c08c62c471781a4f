package audits

import (
	"context"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
)

// Repository is the append-only store of audit runs. A record is created
// running and may be finalized exactly once.
type Repository interface {
	Create(ctx context.Context, rec *models.AuditRecord) (*models.AuditRecord, error)
	UpdateProgress(ctx context.Context, rec *models.AuditRecord) error
	Finalize(ctx context.Context, rec *models.AuditRecord) error
	SaveOutcomes(ctx context.Context, auditID string, outcomes []models.StageOutcome) error
	Get(ctx context.Context, id string) (*models.AuditRecord, error)
	ListByDossier(ctx context.Context, dossierID string) ([]*models.AuditRecord, error)
}
