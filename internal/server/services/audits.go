package services

import (
	"context"
	"database/sql"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/report"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/repomanager"
)

// AuditService serves stored audit records. Running audits go through
// audit.Engine.
type AuditService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAuditService(db *sql.DB, repomanager repomanager.RepositoryManager) *AuditService {
	return &AuditService{db: db, repomanager: repomanager}
}

func (s *AuditService) ListAudits(ctx context.Context, dossierID string) ([]*models.AuditRecord, error) {
	return s.repomanager.Audits(s.db).ListByDossier(ctx, dossierID)
}

func (s *AuditService) GetAudit(ctx context.Context, id string) (*models.AuditRecord, error) {
	return s.repomanager.Audits(s.db).Get(ctx, id)
}

// ExportAudit renders the audit record with its stage outcomes as XLSX.
func (s *AuditService) ExportAudit(ctx context.Context, id string) (name string, data []byte, err error) {
	rec, err := s.GetAudit(ctx, id)
	if err != nil {
		return "", nil, err
	}
	data, err = report.Render(rec)
	if err != nil {
		return "", nil, err
	}
	return report.FileName(rec), data, nil
}
