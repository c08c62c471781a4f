// Package audits persists audit records and their per-stage outcomes.
package audits

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

func (r *PostgresRepository) Create(ctx context.Context, rec *models.AuditRecord) (*models.AuditRecord, error) {
	query :=
		`INSERT INTO audit_records (dossier_id, stage, product_name, manufacturer, file_name, status)
		 VALUES ($1, $2, $3, $4, $5, 'running')
		 RETURNING id, created_at
		 `
	err := r.db.QueryRowContext(ctx, query,
		rec.DossierID, rec.Stage, rec.ProductName, rec.Manufacturer, rec.FileName).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	rec.Status = models.AuditRunning
	return rec, nil
}

// UpdateProgress stores the running counters of an unfinished audit. It is
// a no-op once the record is terminal.
func (r *PostgresRepository) UpdateProgress(ctx context.Context, rec *models.AuditRecord) error {
	query :=
		`UPDATE audit_records SET total_pages = $1, stages_found = $2, problems_found = $3
		 WHERE id = $4 AND status = 'running'
		 `
	if _, err := r.db.ExecContext(ctx, query, rec.TotalPages, rec.StagesFound, rec.ProblemsFound, rec.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Finalize writes the terminal status and counters. It only touches a
// running record and returns common.ErrAuditAlreadyTerminal otherwise.
func (r *PostgresRepository) Finalize(ctx context.Context, rec *models.AuditRecord) error {
	if !rec.Status.Terminal() {
		return fmt.Errorf("%w: finalize with status %q", common.ErrorValidation, rec.Status)
	}
	query :=
		`UPDATE audit_records
		 SET status = $1, file_name = $2, total_pages = $3, stages_found = $4, problems_found = $5,
		     processing_time_ms = $6, finished_at = $7
		 WHERE id = $8 AND status = 'running'
		 `
	res, err := r.db.ExecContext(ctx, query,
		rec.Status, rec.FileName, rec.TotalPages, rec.StagesFound, rec.ProblemsFound,
		rec.ProcessingTimeMS, rec.FinishedAt, rec.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return common.ErrAuditAlreadyTerminal
	}
	return nil
}

// SaveOutcomes upserts per-stage outcomes keyed by (audit_id, stage), so
// writing the same outcome twice leaves a single row.
func (r *PostgresRepository) SaveOutcomes(ctx context.Context, auditID string, outcomes []models.StageOutcome) error {
	query :=
		`INSERT INTO audit_stage_outcomes
		   (audit_id, stage, outcome, failed_document_id, error_kind, message, items_evaluated, problems_found, incomplete)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (audit_id, stage) DO UPDATE SET
		   outcome = EXCLUDED.outcome,
		   failed_document_id = EXCLUDED.failed_document_id,
		   error_kind = EXCLUDED.error_kind,
		   message = EXCLUDED.message,
		   items_evaluated = EXCLUDED.items_evaluated,
		   problems_found = EXCLUDED.problems_found,
		   incomplete = EXCLUDED.incomplete
		 `
	for _, o := range outcomes {
		if _, err := r.db.ExecContext(ctx, query, auditID, o.Stage, o.Outcome, o.FailedDocumentID,
			o.ErrorKind, o.Message, o.ItemsEvaluated, o.ProblemsFound, strings.Join(o.Incomplete, ",")); err != nil {
			return fmt.Errorf("save outcome %q: %w", o.Stage, err)
		}
	}
	return nil
}

const recordColumns = `id, dossier_id, stage, product_name, manufacturer, file_name, total_pages, stages_found,
	problems_found, status, processing_time_ms, created_at, finished_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*models.AuditRecord, error) {
	var (
		rec      models.AuditRecord
		finished sql.NullTime
	)
	if err := s.Scan(&rec.ID, &rec.DossierID, &rec.Stage, &rec.ProductName, &rec.Manufacturer, &rec.FileName,
		&rec.TotalPages, &rec.StagesFound, &rec.ProblemsFound, &rec.Status, &rec.ProcessingTimeMS,
		&rec.CreatedAt, &finished); err != nil {
		return nil, err
	}
	if finished.Valid {
		t := finished.Time
		rec.FinishedAt = &t
	}
	return &rec, nil
}

// Get returns the record together with its stage outcomes.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.AuditRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM audit_records WHERE id = $1`
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	outcomes, err := r.outcomes(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Outcomes = outcomes
	return rec, nil
}

func (r *PostgresRepository) outcomes(ctx context.Context, auditID string) ([]models.StageOutcome, error) {
	query :=
		`SELECT audit_id, stage, outcome, failed_document_id, error_kind, message, items_evaluated, problems_found,
		        incomplete
		 FROM audit_stage_outcomes WHERE audit_id = $1 ORDER BY stage
		 `
	rows, err := r.db.QueryContext(ctx, query, auditID)
	if err != nil {
		return nil, fmt.Errorf("failed to select outcomes: %w", err)
	}
	defer rows.Close()

	var result []models.StageOutcome
	for rows.Next() {
		var (
			o          models.StageOutcome
			incomplete string
		)
		if err := rows.Scan(&o.AuditID, &o.Stage, &o.Outcome, &o.FailedDocumentID, &o.ErrorKind, &o.Message,
			&o.ItemsEvaluated, &o.ProblemsFound, &incomplete); err != nil {
			return nil, err
		}
		if incomplete != "" {
			o.Incomplete = strings.Split(incomplete, ",")
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByDossier returns the dossier's audit history, newest first. Stage
// outcomes are not loaded.
func (r *PostgresRepository) ListByDossier(ctx context.Context, dossierID string) ([]*models.AuditRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM audit_records
		WHERE dossier_id = $1
		ORDER BY created_at DESC, id
		`
	rows, err := r.db.QueryContext(ctx, query, dossierID)
	if err != nil {
		return nil, fmt.Errorf("failed to select audits: %w", err)
	}
	defer rows.Close()

	var result []*models.AuditRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
