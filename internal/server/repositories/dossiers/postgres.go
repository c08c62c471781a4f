package dossiers

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

func (r *PostgresRepository) Create(ctx context.Context, d *models.Dossier) (*models.Dossier, error) {
	query :=
		`INSERT INTO dossiers (lab_id, product_name, manufacturer, product_type, template_id, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `
	err := r.db.QueryRowContext(ctx, query,
		d.LabID, d.ProductName, d.Manufacturer, d.ProductType, d.TemplateID, d.Status, d.CreatedBy).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Dossier, error) {
	query :=
		`SELECT id, lab_id, product_name, manufacturer, product_type, template_id, status, created_by, created_at
		 FROM dossiers WHERE id = $1
		 `
	d := &models.Dossier{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.LabID, &d.ProductName, &d.Manufacturer, &d.ProductType, &d.TemplateID, &d.Status, &d.CreatedBy, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

// UpdateStatus moves the dossier from one status to another. The update is
// conditional on the current status, so a concurrent change surfaces as
// common.ErrInvalidStatusTransition instead of being overwritten.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, from, to models.DossierStatus) error {
	query := `UPDATE dossiers SET status = $1 WHERE id = $2 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return common.ErrInvalidStatusTransition
	}
	return nil
}

// UpdateProductType changes the product type of a dossier that has no
// checklist items yet.
func (r *PostgresRepository) UpdateProductType(ctx context.Context, id string, productType models.ProductType) error {
	query :=
		`UPDATE dossiers SET product_type = $1
		 WHERE id = $2 AND NOT EXISTS (SELECT 1 FROM dossier_items WHERE dossier_id = $2)
		 `
	res, err := r.db.ExecContext(ctx, query, productType, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return common.ErrProductTypeLocked
	}
	return nil
}
