// Package storage fetches dossier documents from object storage and hands
// out presigned upload URLs. S3-compatible and Google Cloud Storage
// backends are supported.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	sc "github.com/carlosftapiap/arcsapp-sub001/internal/server/config"
	"github.com/google/uuid"
)

// Store is the object storage used by the audit pipeline and uploads.
//
// Fetch fails with common.ErrorNotFound, common.ErrStorageUnavailable or an
// errs.DocumentTooLarge error when the object exceeds the size ceiling.
type Store interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
	Size(ctx context.Context, key string) (int64, error)
	PresignPut(ctx context.Context, key, contentType string) (string, error)
}

// NewStore builds the backend selected by cfg.StorageProvider.
func NewStore(ctx context.Context, cfg *sc.Config) (Store, error) {
	switch cfg.StorageProvider {
	case sc.StorageS3, "":
		return NewS3Store(ctx, cfg)
	case sc.StorageGCS:
		return NewGCSStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.StorageProvider)
	}
}

// NewKey returns a fresh object key for a document of the dossier.
func NewKey(dossierID string, now time.Time) string {
	return fmt.Sprintf("dossiers/%s/%d/%d/%d/%v", dossierID, now.Year(), now.Month(), now.Day(), uuid.New())
}

// readBounded reads at most max bytes from r. One extra byte is read so an
// object of exactly max bytes is accepted and anything larger is rejected
// without buffering it.
func readBounded(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > max {
		return nil, errs.Errorf(errs.DocumentTooLarge, "object exceeds %d bytes", max)
	}
	return data, nil
}
