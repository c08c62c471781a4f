package dossieritems

import (
	"context"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
)

type Repository interface {
	CreateFromTemplate(ctx context.Context, dossierID, templateID string) (int64, error)
	ListByDossier(ctx context.Context, dossierID string) ([]*models.DossierItem, error)
	LockStatuses(ctx context.Context, dossierID string) (map[string]models.ItemStatus, error)
	UpdateStatus(ctx context.Context, id string, status models.ItemStatus, observation string) error
	MarkUploaded(ctx context.Context, id string) (bool, error)
	AllApproved(ctx context.Context, dossierID string) (bool, error)
}
