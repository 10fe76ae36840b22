package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "github.com/oggyb/messages-api/internal/domain/message"
	"github.com/oggyb/messages-api/internal/handler"
	"github.com/oggyb/messages-api/internal/mocks"
	routes "github.com/oggyb/messages-api/internal/router"
	"github.com/oggyb/messages-api/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	repo    *mocks.MockRepository
	store   *mocks.MockStore
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	store := mocks.NewMockStore(ctrl)

	deps := routes.AppDeps{
		Home:      handler.NewHomeHandler(),
		Message:   handler.NewMessageHandler(service.NewMessageService(repo)),
		Timestamp: handler.NewTimestampHandler(service.NewTimestampService(store, "test-bucket", "timestamp.txt")),
	}

	return &testEnv{repo: repo, store: store, handler: Handler(deps)}
}

func (e *testEnv) do(t *testing.T, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Origin", "http://example.com")
	e.handler.ServeHTTP(rec, r)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

// seedRows returns n messages ordered newest first, ids n..1.
func seedRows(n int) []*domain.Message {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*domain.Message, n)
	for i := 0; i < n; i++ {
		id := int64(n - i)
		out[i] = &domain.Message{
			ID:        id,
			Content:   "content",
			Author:    "author",
			CreatedAt: base.Add(time.Duration(id) * time.Minute),
		}
	}
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	req := require.New(t)

	rec, body := env.do(t, http.MethodGet, "/health")

	req.Equal(http.StatusOK, rec.Code)
	req.Equal(map[string]any{"status": "ok"}, body)
	req.Equal("application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	req.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/messages/1"},
		{http.MethodDelete, "/timestamp"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := require.New(t)
			rec, body := env.do(t, tc.method, tc.path)

			req.Equal(http.StatusNotFound, rec.Code)
			req.Equal(map[string]any{"code": float64(404), "message": "Not Found"}, body)
		})
	}
}

func TestListMessages_SecondPage(t *testing.T) {
	env := newTestEnv(t)
	req := require.New(t)
	rows := seedRows(12)

	env.repo.EXPECT().
		List(gomock.Any(), domain.Window{Offset: 5, Limit: 5}).
		Return(rows[5:10], int64(12), nil)

	rec, body := env.do(t, http.MethodGet, "/messages?page=2&per_page=5")

	req.Equal(http.StatusOK, rec.Code)
	req.Equal(float64(12), body["total"])
	req.Equal(float64(2), body["page"])
	req.Equal(float64(5), body["per_page"])

	msgs := body["messages"].([]any)
	req.Len(msgs, 5)
	first := msgs[0].(map[string]any)
	req.Equal(float64(7), first["id"])
	req.Equal("author", first["author"])
	req.Equal("content", first["content"])
	req.Equal("2024-01-01T00:07:00Z", first["created_at"])
}

func TestListMessages_Defaults(t *testing.T) {
	env := newTestEnv(t)
	req := require.New(t)

	env.repo.EXPECT().
		List(gomock.Any(), domain.Window{Offset: 0, Limit: 10}).
		Return(nil, int64(0), nil)

	rec, body := env.do(t, http.MethodGet, "/messages")

	req.Equal(http.StatusOK, rec.Code)
	req.Equal([]any{}, body["messages"])
	req.Equal(float64(0), body["total"])
	req.Equal(float64(1), body["page"])
	req.Equal(float64(10), body["per_page"])
}

func TestListMessages_InvalidParams(t *testing.T) {
	env := newTestEnv(t)

	for _, q := range []string{
		"?page=0",
		"?per_page=-1",
		"?page=x",
		"?page=4611686018427387905&per_page=4",
	} {
		t.Run(q, func(t *testing.T) {
			req := require.New(t)
			rec, body := env.do(t, http.MethodGet, "/messages"+q)

			req.Equal(http.StatusBadRequest, rec.Code)
			req.Equal(map[string]any{"code": float64(400), "message": "Bad Request"}, body)
		})
	}
}

func TestListMessages_DatabaseOutage(t *testing.T) {
	env := newTestEnv(t)
	req := require.New(t)

	env.repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	rec, body := env.do(t, http.MethodGet, "/messages")

	req.Equal(http.StatusInternalServerError, rec.Code)
	req.Equal(map[string]any{"code": float64(500), "message": "Database Error"}, body)
	req.NotContains(rec.Body.String(), "10.0.0.5")

	rec, body = env.do(t, http.MethodGet, "/health")
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("ok", body["status"])
}

func TestTimestamp_WriteThenRead(t *testing.T) {
	env := newTestEnv(t)
	req := require.New(t)

	var stored []byte
	env.store.EXPECT().
		Put(gomock.Any(), "test-bucket", "timestamp.txt", gomock.Any(), "text/plain").
		DoAndReturn(func(_ context.Context, _, _ string, body []byte, _ string) error {
			stored = body
			return nil
		})
	env.store.EXPECT().
		Get(gomock.Any(), "test-bucket", "timestamp.txt").
		DoAndReturn(func(_ context.Context, _, _ string) ([]byte, error) {
			return stored, nil
		})

	rec, body := env.do(t, http.MethodPost, "/timestamp")
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("ok", body["status"])
	ts, ok := body["timestamp"].(string)
	req.True(ok)
	req.NotEmpty(ts)

	rec, body = env.do(t, http.MethodGet, "/timestamp")
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("ok", body["status"])
	content := body["content"].(string)
	req.True(strings.HasPrefix(content, service.TimestampPrefix))
	req.Contains(content, ts)
}

func TestTimestamp_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	req := require.New(t)

	env.store.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("put: HTTP error: 503"))
	env.store.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("get: HTTP error: 404"))

	rec, body := env.do(t, http.MethodPost, "/timestamp")
	req.Equal(http.StatusInternalServerError, rec.Code)
	req.Equal(map[string]any{"code": float64(500), "message": "S3 Error"}, body)

	rec, body = env.do(t, http.MethodGet, "/timestamp")
	req.Equal(http.StatusInternalServerError, rec.Code)
	req.Equal(map[string]any{"code": float64(500), "message": "S3 Error"}, body)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)
	req := require.New(t)

	r := httptest.NewRequest(http.MethodOptions, "/timestamp", nil)
	r.Header.Set("Origin", "http://example.com")
	r.Header.Set("Access-Control-Request-Method", "POST")
	r.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()

	env.handler.ServeHTTP(rec, r)

	req.Equal(http.StatusNoContent, rec.Code)
	req.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	req.Equal("POST", rec.Header().Get("Access-Control-Allow-Methods"))
	req.Equal("Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	req.Equal("600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestSwaggerUI(t *testing.T) {
	env := newTestEnv(t)
	rec := httptest.NewRecorder()

	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/messages")
}
