//go:generate go run go.uber.org/mock/mockgen -source=objectstore.go -destination=../mocks/mock_object_store.go -package=mocks

// Package objectstore exposes a minimal bucket/key blob storage contract.
package objectstore

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the object does not exist.
var ErrNotFound = errors.New("object not found")

// Store is the contract for a blob storage backend.
type Store interface {
	// Put creates or replaces the object at bucket/key.
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error

	// Get returns the full body of the object at bucket/key.
	// A missing object yields an error matching ErrNotFound.
	Get(ctx context.Context, bucket, key string) ([]byte, error)

	// EnsureBucket creates the bucket if it does not exist yet.
	EnsureBucket(ctx context.Context, bucket string) error
}

// Prefix namespaces flat key/value backends by bucket.
type Prefix string

// Key joins the prefix and id into a single flat key.
func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
