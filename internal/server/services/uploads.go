package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/dbx"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/extract"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/models"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/repomanager"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/storage"
)

var allowedMimeTypes = map[string]bool{
	extract.MimePDF:  true,
	extract.MimeDOCX: true,
}

type UploadRequest struct {
	DossierID string
	// DossierItemID is empty for an extra document.
	DossierItemID string
	FileName      string
	MimeType      string
	UploadedBy    string
}

// UploadService hands out presigned upload URLs and records documents once
// their bodies are in object storage.
type UploadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.Store
	maxBytes    int64
	now         func() time.Time
}

func NewUploadService(db *sql.DB, repomanager repomanager.RepositoryManager, store storage.Store, maxBytes int64) *UploadService {
	return &UploadService{db: db, repomanager: repomanager, store: store, maxBytes: maxBytes, now: time.Now}
}

func (s *UploadService) RequestUpload(ctx context.Context, req UploadRequest) (*models.UploadTicket, error) {
	req.FileName = path.Base(strings.TrimSpace(req.FileName))
	if req.FileName == "." || req.FileName == "/" {
		return nil, fmt.Errorf("%w: file name is required", common.ErrorValidation)
	}
	if !allowedMimeTypes[req.MimeType] {
		return nil, fmt.Errorf("%w: mime type %q not accepted", common.ErrorValidation, req.MimeType)
	}

	if _, err := s.repomanager.Dossiers(s.db).Get(ctx, req.DossierID); err != nil {
		return nil, err
	}
	if req.DossierItemID != "" {
		if err := s.checkItem(ctx, req.DossierID, req.DossierItemID); err != nil {
			return nil, err
		}
	}

	key := storage.NewKey(req.DossierID, s.now())
	url, err := s.store.PresignPut(ctx, key, req.MimeType)
	if err != nil {
		return nil, err
	}

	doc, err := s.repomanager.Documents(s.db).Create(ctx, &models.Document{
		DossierID:     req.DossierID,
		DossierItemID: req.DossierItemID,
		UploadedBy:    req.UploadedBy,
		FileName:      req.FileName,
		MimeType:      req.MimeType,
		StorageKey:    key,
		UploadStatus:  models.UploadPending,
	})
	if err != nil {
		return nil, err
	}
	return &models.UploadTicket{DocumentID: doc.ID, StorageKey: key, URL: url}, nil
}

func (s *UploadService) checkItem(ctx context.Context, dossierID, itemID string) error {
	items, err := s.repomanager.DossierItems(s.db).ListByDossier(ctx, dossierID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == itemID {
			return nil
		}
	}
	return fmt.Errorf("%w: item %s is not part of dossier %s", common.ErrorNotFound, itemID, dossierID)
}

func (s *UploadService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	return s.repomanager.Documents(s.db).Get(ctx, id)
}

// ConfirmUpload marks a document completed once its object exists and moves
// its checklist item from pending to uploaded. Confirming twice is a no-op.
func (s *UploadService) ConfirmUpload(ctx context.Context, documentID string) (*models.Document, error) {
	doc, err := s.repomanager.Documents(s.db).Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.UploadStatus == models.UploadCompleted {
		return doc, nil
	}

	size, err := s.store.Size(ctx, doc.StorageKey)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: document %s has not been uploaded", common.ErrorValidation, documentID)
	}
	if err != nil {
		return nil, err
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, errs.WithDocument(errs.Errorf(errs.DocumentTooLarge, "%d bytes, limit %d", size, s.maxBytes), documentID)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Documents(tx).MarkUploaded(ctx, documentID, size); err != nil {
			return err
		}
		if doc.DossierItemID == "" {
			return nil
		}
		_, err := s.repomanager.DossierItems(tx).MarkUploaded(ctx, doc.DossierItemID)
		return err
	})
	if err != nil {
		return nil, err
	}

	doc.UploadStatus = models.UploadCompleted
	doc.SizeBytes = size
	return doc, nil
}
