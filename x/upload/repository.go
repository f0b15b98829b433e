//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package upload

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"github.com/totegamma/campsite/core"
)

// Repository is the interface for the object store
type Repository interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error
}

type repository struct {
	client *minio.Client
	bucket string
}

// NewRepository creates a new object store repository
func NewRepository(client *minio.Client, config core.Config) Repository {
	return &repository{client, config.UploadBucket}
}

// EnsureBucket creates the upload bucket when missing
func (r *repository) EnsureBucket(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Upload.Repository.EnsureBucket")
	defer span.End()

	exists, err := r.client.BucketExists(ctx, r.bucket)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to check bucket")
	}
	if exists {
		return nil
	}

	err = r.client.MakeBucket(ctx, r.bucket, minio.MakeBucketOptions{})
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to create bucket")
	}

	return nil
}

func (r *repository) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error {
	ctx, span := tracer.Start(ctx, "Upload.Repository.Put")
	defer span.End()

	_, err := r.client.PutObject(ctx, r.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to put object")
	}

	return nil
}
