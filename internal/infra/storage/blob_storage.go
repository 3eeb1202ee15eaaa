// Package storage implements the FileStorage domain service on top of
// gocloud.dev blob buckets, so local disk and cloud object stores are
// interchangeable through the bucket URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"imprisio/config"
	"imprisio/internal/domain/lifecycle"
	"imprisio/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for single-node deployments
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

// blobStorage implements the service.FileStorage interface.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a FileStorage.
func New(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// NewWithBucket wraps an already-open bucket. Tests use it with mem:// buckets.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.FileStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the content under the given key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize %s", key)
	}

	s.logger.Debug("blob stored",
		slog.String("key", key),
		slog.String("contentType", contentType),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object under the given key. Missing objects are fine:
// replacing a never-uploaded avatar must not fail.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
