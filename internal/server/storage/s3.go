package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit/errs"
	sc "github.com/carlosftapiap/arcsapp-sub001/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in)
	}

	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in)
	}
)

// S3Store reads documents from an S3-compatible bucket (AWS or MinIO).
type S3Store struct {
	client    *s3.Client
	presign   *s3.PresignClient
	bucket    string
	maxBytes  int64
	urlExpiry time.Duration
}

func NewS3Store(ctx context.Context, cfg *sc.Config) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		presign:   newS3PresignClient(client),
		bucket:    cfg.S3Bucket,
		maxBytes:  cfg.MaxDocumentBytes(),
		urlExpiry: cfg.UploadURLExpiry,
	}, nil
}

func mapS3Error(key string, err error) error {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return fmt.Errorf("object %q: %w", key, common.ErrorNotFound)
	}
	return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
}

func (s *S3Store) Fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := getObject(s.client, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapS3Error(key, err)
	}
	defer out.Body.Close()

	if s.maxBytes > 0 && out.ContentLength != nil && *out.ContentLength > s.maxBytes {
		return nil, errs.Errorf(errs.DocumentTooLarge, "object is %d bytes, limit %d", *out.ContentLength, s.maxBytes)
	}

	data, err := readBounded(out.Body, s.maxBytes)
	if err != nil {
		if errs.KindOf(err) != "" {
			return nil, err
		}
		return nil, fmt.Errorf("%w: read %q: %v", common.ErrStorageUnavailable, key, err)
	}
	return data, nil
}

func (s *S3Store) Size(ctx context.Context, key string) (int64, error) {
	out, err := headObject(s.client, ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return 0, mapS3Error(key, err)
	}
	return aws.ToInt64(out.ContentLength), nil
}

func (s *S3Store) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	req, err := presignPutObject(s.presign, ctx, in, s3.WithPresignExpires(s.urlExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
