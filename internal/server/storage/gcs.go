package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	sc "github.com/carlosftapiap/arcsapp-sub001/internal/server/config"
	"google.golang.org/api/option"
)

var (
	newGCSClient = storage.NewClient

	gcsNewReader = func(ctx context.Context, obj *storage.ObjectHandle) (io.ReadCloser, error) {
		return obj.NewReader(ctx)
	}

	gcsAttrs = func(ctx context.Context, obj *storage.ObjectHandle) (*storage.ObjectAttrs, error) {
		return obj.Attrs(ctx)
	}

	gcsSignedURL = func(b *storage.BucketHandle, key string, opts *storage.SignedURLOptions) (string, error) {
		return b.SignedURL(key, opts)
	}
)

// GCSStore reads documents from a Google Cloud Storage bucket.
type GCSStore struct {
	client    *storage.Client
	bucket    *storage.BucketHandle
	maxBytes  int64
	urlExpiry time.Duration
}

// NewGCSStore uses the credentials file from cfg when set, application
// default credentials otherwise.
func NewGCSStore(ctx context.Context, cfg *sc.Config) (*GCSStore, error) {
	if cfg.GCSBucket == "" {
		return nil, errors.New("gcs bucket is required")
	}

	var opts []option.ClientOption
	if cfg.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
	}
	client, err := newGCSClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}

	return &GCSStore{
		client:    client,
		bucket:    client.Bucket(cfg.GCSBucket),
		maxBytes:  cfg.MaxDocumentBytes(),
		urlExpiry: cfg.UploadURLExpiry,
	}, nil
}

func mapGCSError(key string, err error) error {
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("object %q: %w", key, common.ErrorNotFound)
	}
	return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
}

func (s *GCSStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	r, err := gcsNewReader(ctx, s.bucket.Object(key))
	if err != nil {
		return nil, mapGCSError(key, err)
	}
	defer r.Close()

	data, err := readBounded(r, s.maxBytes)
	if err != nil {
		if errs.KindOf(err) != "" {
			return nil, err
		}
		return nil, fmt.Errorf("%w: read %q: %v", common.ErrStorageUnavailable, key, err)
	}
	return data, nil
}

func (s *GCSStore) Size(ctx context.Context, key string) (int64, error) {
	attrs, err := gcsAttrs(ctx, s.bucket.Object(key))
	if err != nil {
		return 0, mapGCSError(key, err)
	}
	return attrs.Size, nil
}

func (s *GCSStore) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	return gcsSignedURL(s.bucket, key, &storage.SignedURLOptions{
		Scheme:      storage.SigningSchemeV4,
		Method:      http.MethodPut,
		Expires:     time.Now().Add(s.urlExpiry),
		ContentType: contentType,
	})
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
