package s3

import (
	"context"
	"fmt"
	"path"
)

// ObjectStore is the subset of Client used by the plan exporter.
type ObjectStore interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	PutObject(ctx context.Context, bucketName, key string, data []byte) error
}

var _ ObjectStore = (*Client)(nil)

// Exporter uploads rendered plan documents to an object storage bucket.
type Exporter struct {
	store  ObjectStore
	bucket string
	prefix string
}

// NewExporter creates an exporter writing into the given bucket. An optional
// key prefix scopes all uploads under a common path.
func NewExporter(store ObjectStore, bucket, prefix string) *Exporter {
	return &Exporter{store: store, bucket: bucket, prefix: prefix}
}

// Key returns the object key an export for the given plan name is stored under.
func (e *Exporter) Key(planName string) string {
	return path.Join(e.prefix, planName+".yaml")
}

// Export ensures the bucket exists and uploads the document under the plan's key.
func (e *Exporter) Export(ctx context.Context, planName string, document []byte) (string, error) {
	if err := e.store.EnsureBucket(ctx, e.bucket); err != nil {
		return "", fmt.Errorf("ensure bucket: %w", err)
	}

	key := e.Key(planName)
	if err := e.store.PutObject(ctx, e.bucket, key, document); err != nil {
		return "", fmt.Errorf("upload plan: %w", err)
	}
	return key, nil
}
