// Package dossieritems persists the per-dossier copies of checklist items
// and their review status.
package dossieritems

import (
	"context"
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

// CreateFromTemplate copies every item of the template into the dossier and
// returns the number of rows created.
func (r *PostgresRepository) CreateFromTemplate(ctx context.Context, dossierID, templateID string) (int64, error) {
	query :=
		`INSERT INTO dossier_items (dossier_id, checklist_item_id)
		 SELECT $1, id FROM checklist_items WHERE template_id = $2
		 `
	res, err := r.db.ExecContext(ctx, query, dossierID, templateID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return 0, common.ErrorAlreadyExists
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) ListByDossier(ctx context.Context, dossierID string) ([]*models.DossierItem, error) {
	query :=
		`SELECT di.id, di.dossier_id, di.checklist_item_id, di.status, di.observation,
		        ci.code, ci.title, ci.description, ci.stage, ci.multi_file, ci.sort_order
		 FROM dossier_items di
		 JOIN checklist_items ci ON ci.id = di.checklist_item_id
		 WHERE di.dossier_id = $1
		 ORDER BY ci.stage, ci.sort_order, ci.code
		 `
	rows, err := r.db.QueryContext(ctx, query, dossierID)
	if err != nil {
		return nil, fmt.Errorf("failed to select dossier items: %w", err)
	}
	defer rows.Close()

	var result []*models.DossierItem
	for rows.Next() {
		var it models.DossierItem
		if err := rows.Scan(&it.ID, &it.DossierID, &it.ChecklistItemID, &it.Status, &it.Observation,
			&it.Code, &it.Title, &it.Description, &it.Stage, &it.MultiFile, &it.SortOrder); err != nil {
			return nil, err
		}
		result = append(result, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// LockStatuses reads the current status of every item of the dossier with
// row locks held until the surrounding transaction ends.
func (r *PostgresRepository) LockStatuses(ctx context.Context, dossierID string) (map[string]models.ItemStatus, error) {
	query := `SELECT id, status FROM dossier_items WHERE dossier_id = $1 FOR UPDATE`
	rows, err := r.db.QueryContext(ctx, query, dossierID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock dossier items: %w", err)
	}
	defer rows.Close()

	result := make(map[string]models.ItemStatus)
	for rows.Next() {
		var (
			id     string
			status models.ItemStatus
		)
		if err := rows.Scan(&id, &status); err != nil {
			return nil, err
		}
		result[id] = status
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.ItemStatus, observation string) error {
	query := `UPDATE dossier_items SET status = $1, observation = $2, updated_at = now() WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, status, observation, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

// MarkUploaded moves a pending item to uploaded. It reports false when the
// item was already past pending, which is not an error.
func (r *PostgresRepository) MarkUploaded(ctx context.Context, id string) (bool, error) {
	query := `UPDATE dossier_items SET status = 'uploaded', updated_at = now() WHERE id = $1 AND status = 'pending'`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

// AllApproved reports whether the dossier has items and every one of them
// is approved.
func (r *PostgresRepository) AllApproved(ctx context.Context, dossierID string) (bool, error) {
	query :=
		`SELECT count(*), count(*) FILTER (WHERE status <> 'approved')
		 FROM dossier_items WHERE dossier_id = $1
		 `
	var total, open int
	if err := r.db.QueryRowContext(ctx, query, dossierID).Scan(&total, &open); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return total > 0 && open == 0, nil
}
