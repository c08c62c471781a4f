package checklists

import (
	"context"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
)

type Repository interface {
	ActiveTemplate(ctx context.Context, productType models.ProductType) (*models.ChecklistTemplate, error)
	ItemsByTemplate(ctx context.Context, templateID string) ([]*models.ChecklistItem, error)
}
