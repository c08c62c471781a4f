// Package documents stores metadata for uploaded dossier files. The bodies
// live in object storage under StorageKey.
package documents

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

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	query :=
		`INSERT INTO documents (dossier_id, dossier_item_id, uploaded_by, file_name, mime_type, storage_key, size_bytes, upload_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, uploaded_at
		 `
	err := r.db.QueryRowContext(ctx, query,
		doc.DossierID, nullable(doc.DossierItemID), doc.UploadedBy, doc.FileName, doc.MimeType,
		doc.StorageKey, doc.SizeBytes, doc.UploadStatus).
		Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

const selectColumns = `id, dossier_id, dossier_item_id, uploaded_by, file_name, mime_type, storage_key, size_bytes, upload_status, uploaded_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*models.Document, error) {
	var (
		d      models.Document
		itemID sql.NullString
	)
	if err := s.Scan(&d.ID, &d.DossierID, &itemID, &d.UploadedBy, &d.FileName, &d.MimeType,
		&d.StorageKey, &d.SizeBytes, &d.UploadStatus, &d.UploadedAt); err != nil {
		return nil, err
	}
	d.DossierItemID = itemID.String
	return &d, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Document, error) {
	query := `SELECT ` + selectColumns + ` FROM documents WHERE id = $1`
	d, err := scanDocument(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

// MarkUploaded marks the document upload as completed and records its size.
// Exactly one row must be affected.
func (r *PostgresRepository) MarkUploaded(ctx context.Context, id string, sizeBytes int64) error {
	query := `UPDATE documents SET upload_status = 'completed', size_bytes = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, sizeBytes, id)
	if err != nil {
		return fmt.Errorf("failed to mark uploaded: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

// ListCompletedByDossier returns the dossier's fully uploaded documents in
// upload order.
func (r *PostgresRepository) ListCompletedByDossier(ctx context.Context, dossierID string) ([]*models.Document, error) {
	query := `SELECT ` + selectColumns + ` FROM documents
		WHERE dossier_id = $1 AND upload_status = 'completed'
		ORDER BY uploaded_at, id
		`
	rows, err := r.db.QueryContext(ctx, query, dossierID)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	defer rows.Close()

	var result []*models.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
