package store

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Get when no object lives at the given path.
var ErrNotExist = errors.New("object does not exist")

// ObjectStore is the blob sink the pipeline writes to. Put is an upsert:
// writing to an existing path replaces the object (last-write-wins).
type ObjectStore interface {
	Put(ctx context.Context, bucket, path string, content []byte, contentType string) error
	Get(ctx context.Context, bucket, path string) (content []byte, contentType string, err error)
	Exists(ctx context.Context, bucket, path string) (bool, error)
	List(ctx context.Context, bucket, prefix string) ([]string, error)
}
