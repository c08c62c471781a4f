package dossiers

import (
	"context"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, d *models.Dossier) (*models.Dossier, error)
	Get(ctx context.Context, id string) (*models.Dossier, error)
	UpdateStatus(ctx context.Context, id string, from, to models.DossierStatus) error
	UpdateProductType(ctx context.Context, id string, productType models.ProductType) error
}
