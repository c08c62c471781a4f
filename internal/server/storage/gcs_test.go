package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	sc "github.com/carlosftapiap/arcsapp-sub001/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestGCSStore(t *testing.T) *GCSStore {
	t.Helper()

	orig := newGCSClient
	t.Cleanup(func() { newGCSClient = orig })
	newGCSClient = func(ctx context.Context, opts ...option.ClientOption) (*storage.Client, error) {
		return storage.NewClient(ctx, option.WithoutAuthentication())
	}

	cfg := testConfig()
	cfg.StorageProvider = sc.StorageGCS
	cfg.GCSBucket = "dossier-files"
	s, err := NewGCSStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewGCSStore_RequiresBucket(t *testing.T) {
	cfg := testConfig()
	_, err := NewGCSStore(context.Background(), cfg)
	require.Error(t, err)
}

func TestGCSFetch(t *testing.T) {
	s := newTestGCSStore(t)

	orig := gcsNewReader
	t.Cleanup(func() { gcsNewReader = orig })
	gcsNewReader = func(ctx context.Context, obj *storage.ObjectHandle) (io.ReadCloser, error) {
		switch obj.ObjectName() {
		case "missing":
			return nil, storage.ErrObjectNotExist
		case "broken":
			return nil, errors.New("503 backend error")
		}
		assert.Equal(t, "dossier-files", obj.BucketName())
		return io.NopCloser(strings.NewReader("PK\x03\x04")), nil
	}

	got, err := s.Fetch(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, []byte("PK\x03\x04"), got)

	_, err = s.Fetch(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Fetch(context.Background(), "broken")
	assert.ErrorIs(t, err, common.ErrStorageUnavailable)
}

func TestGCSSizeAndPresign(t *testing.T) {
	s := newTestGCSStore(t)

	origAttrs, origSign := gcsAttrs, gcsSignedURL
	t.Cleanup(func() { gcsAttrs, gcsSignedURL = origAttrs, origSign })

	gcsAttrs = func(ctx context.Context, obj *storage.ObjectHandle) (*storage.ObjectAttrs, error) {
		return &storage.ObjectAttrs{Size: 77}, nil
	}
	gcsSignedURL = func(b *storage.BucketHandle, key string, opts *storage.SignedURLOptions) (string, error) {
		assert.Equal(t, http.MethodPut, opts.Method)
		assert.Equal(t, storage.SigningSchemeV4, opts.Scheme)
		assert.Equal(t, "application/pdf", opts.ContentType)
		return "https://storage.googleapis.com/dossier-files/" + key, nil
	}

	n, err := s.Size(context.Background(), "k")
	require.NoError(t, err)
	assert.EqualValues(t, 77, n)

	url, err := s.PresignPut(context.Background(), "k", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/dossier-files/k", url)
}

func TestNewStore_UnknownProvider(t *testing.T) {
	cfg := testConfig()
	cfg.StorageProvider = "ftp"
	_, err := NewStore(context.Background(), cfg)
	require.Error(t, err)
}
