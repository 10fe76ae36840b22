package s3store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oggyb/messages-api/internal/objectstore"
	"github.com/stretchr/testify/require"
)

// fakeS3 is a tiny path-style bucket/key server backed by a map.
type fakeS3 struct {
	mu          sync.Mutex
	buckets     map[string]bool
	objects     map[string][]byte
	contentType map[string]string
	authHeaders []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		buckets:     map[string]bool{},
		objects:     map[string][]byte{},
		contentType: map[string]string{},
	}
}

func writeS3Error(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, "<Error><Code>"+code+"</Code><Message>"+code+"</Message></Error>")
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))

	parts := strings.SplitN(strings.Trim(r.URL.Path, "/"), "/", 2)
	bucket := parts[0]

	if len(parts) == 1 {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if f.buckets[bucket] {
			writeS3Error(w, http.StatusConflict, "BucketAlreadyOwnedByYou")
			return
		}
		f.buckets[bucket] = true
		w.WriteHeader(http.StatusOK)
		return
	}

	if !f.buckets[bucket] {
		writeS3Error(w, http.StatusNotFound, "NoSuchBucket")
		return
	}

	object := bucket + "/" + parts[1]
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[object] = body
		f.contentType[object] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := f.objects[object]
		if !ok {
			writeS3Error(w, http.StatusNotFound, "NoSuchKey")
			return
		}
		_, _ = w.Write(body)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestClient(endpoint string) *Client {
	return New(Options{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		Timeout:         time.Second,
	})
}

func TestClient_PutGetRoundTrip(t *testing.T) {
	req := require.New(t)
	fake := newFakeS3()
	srv := httptest.NewServer(fake)
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := context.Background()

	req.NoError(c.EnsureBucket(ctx, "test-bucket"))
	// Second call hits the already-owned path and still succeeds.
	req.NoError(c.EnsureBucket(ctx, "test-bucket"))

	req.NoError(c.Put(ctx, "test-bucket", "timestamp.txt", []byte("first"), "text/plain"))
	req.NoError(c.Put(ctx, "test-bucket", "timestamp.txt", []byte("second"), "text/plain"))

	got, err := c.Get(ctx, "test-bucket", "timestamp.txt")
	req.NoError(err)
	req.Equal("second", string(got))
	req.Equal("text/plain", fake.contentType["test-bucket/timestamp.txt"])
}

func TestClient_SignsRequests(t *testing.T) {
	req := require.New(t)
	fake := newFakeS3()
	fake.buckets["test-bucket"] = true
	srv := httptest.NewServer(fake)
	defer srv.Close()

	c := newTestClient(srv.URL)
	req.NoError(c.Put(context.Background(), "test-bucket", "timestamp.txt", []byte("x"), "text/plain"))

	req.Len(fake.authHeaders, 1)
	req.True(strings.HasPrefix(fake.authHeaders[0], "AWS4-HMAC-SHA256 Credential=test/"), fake.authHeaders[0])
	req.Contains(fake.authHeaders[0], "/us-east-1/s3/aws4_request")
}

func TestClient_GetMissingObject(t *testing.T) {
	req := require.New(t)
	fake := newFakeS3()
	fake.buckets["test-bucket"] = true
	srv := httptest.NewServer(fake)
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.Get(context.Background(), "test-bucket", "timestamp.txt")
	req.ErrorIs(err, objectstore.ErrNotFound)

	_, err = c.Get(context.Background(), "other-bucket", "timestamp.txt")
	req.ErrorIs(err, objectstore.ErrNotFound)
}

func TestClient_ServerError(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeS3Error(w, http.StatusInternalServerError, "InternalError")
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	err := c.Put(context.Background(), "b", "k", []byte("x"), "text/plain")
	req.Error(err)
	req.NotErrorIs(err, objectstore.ErrNotFound)
	req.Contains(err.Error(), "500")

	_, err = c.Get(context.Background(), "b", "k")
	req.Error(err)
	req.NotErrorIs(err, objectstore.ErrNotFound)

	err = c.EnsureBucket(context.Background(), "b")
	req.Error(err)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(url)

	_, err := c.Get(context.Background(), "b", "k")
	require.Error(t, err)
	require.NotErrorIs(t, err, objectstore.ErrNotFound)
	require.True(t, strings.HasPrefix(err.Error(), "get object:"), err.Error())
}
