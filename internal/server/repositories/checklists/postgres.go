// Package checklists reads checklist templates and their items. Templates
// are managed out of band and are read-only to the service.
package checklists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/dbx"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ActiveTemplate returns the active template for productType, or
// common.ErrNoActiveTemplate when there is none.
func (r *PostgresRepository) ActiveTemplate(ctx context.Context, productType models.ProductType) (*models.ChecklistTemplate, error) {
	query := `SELECT id, product_type, version, active FROM checklist_templates
		WHERE product_type = $1 AND active
		`

	t := &models.ChecklistTemplate{}
	err := r.db.QueryRowContext(ctx, query, productType).Scan(&t.ID, &t.ProductType, &t.Version, &t.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNoActiveTemplate
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) ItemsByTemplate(ctx context.Context, templateID string) ([]*models.ChecklistItem, error) {
	query := `SELECT id, template_id, code, title, description, stage, multi_file, sort_order FROM checklist_items
		WHERE template_id = $1
		ORDER BY stage, sort_order, code
		`
	rows, err := r.db.QueryContext(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to select checklist items: %w", err)
	}
	defer rows.Close()

	var result []*models.ChecklistItem
	for rows.Next() {
		var it models.ChecklistItem
		if err := rows.Scan(&it.ID, &it.TemplateID, &it.Code, &it.Title, &it.Description, &it.Stage, &it.MultiFile, &it.SortOrder); err != nil {
			return nil, err
		}
		result = append(result, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
