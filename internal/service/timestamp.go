package service

import (
	"context"
	"log"
	"time"

	"github.com/oggyb/messages-api/internal/apperror"
	"github.com/oggyb/messages-api/internal/objectstore"
)

// TimestampPrefix is prepended to the timestamp in the stored object.
const TimestampPrefix = "Current timestamp: "

type TimestampService interface {
	// Write stores a fresh timestamp and returns the bare RFC3339 value.
	Write(ctx context.Context) (string, error)

	// Read returns the stored object verbatim, prefix included.
	Read(ctx context.Context) (string, error)
}

type timestampService struct {
	store  objectstore.Store
	bucket string
	key    string
	now    func() time.Time
}

// NewTimestampService creates a timestamp service writing to bucket/key in store.
func NewTimestampService(store objectstore.Store, bucket, key string) TimestampService {
	return &timestampService{
		store:  store,
		bucket: bucket,
		key:    key,
		now:    time.Now,
	}
}

func (s *timestampService) Write(ctx context.Context) (string, error) {
	ts := s.now().UTC().Format(time.RFC3339Nano)
	content := TimestampPrefix + ts

	log.Printf("[Timestamp] Writing to %s/%s", s.bucket, s.key)
	if err := s.store.Put(ctx, s.bucket, s.key, []byte(content), "text/plain"); err != nil {
		return "", apperror.ObjectStore("write timestamp", err)
	}

	return ts, nil
}

func (s *timestampService) Read(ctx context.Context) (string, error) {
	body, err := s.store.Get(ctx, s.bucket, s.key)
	if err != nil {
		return "", apperror.ObjectStore("read timestamp", err)
	}
	return string(body), nil
}
