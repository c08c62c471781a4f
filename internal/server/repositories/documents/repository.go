package documents

import (
	"context"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	Get(ctx context.Context, id string) (*models.Document, error)
	MarkUploaded(ctx context.Context, id string, sizeBytes int64) error
	ListCompletedByDossier(ctx context.Context, dossierID string) ([]*models.Document, error)
}
