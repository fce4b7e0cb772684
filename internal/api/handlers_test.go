package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/tubepulse/internal/clients"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func get(t *testing.T, router http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestRootEndpoint(t *testing.T) {
	router := NewRouter(newTestService(&stubFetcher{ready: false}))

	w := get(t, router, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	info := decode[ServiceInfo](t, w)
	assert.Equal(t, ServiceName, info.Name)
	assert.Equal(t, "not configured", info.APIStatus.Status)
	assert.Contains(t, info.Endpoints, "/api/analyze")
}

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(newTestService(&stubFetcher{ready: true}))

	w := get(t, router, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	health := decode[HealthResponse](t, w)
	assert.Equal(t, "ok", health.Status)
	assert.True(t, health.APIConfigured)
	assert.NotEmpty(t, health.Timestamp)
}

func TestHealthEndpointUnconfigured(t *testing.T) {
	router := NewRouter(newTestService(&stubFetcher{ready: false}))

	w := get(t, router, "/api/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	health := decode[HealthResponse](t, w)
	assert.Equal(t, "error", health.Status)
	assert.False(t, health.APIConfigured)
	assert.NotEmpty(t, health.Error)
}

func TestVideoInfoEndpoint(t *testing.T) {
	fetcher := &stubFetcher{stats: exampleStats(), ready: true}
	router := NewRouter(newTestService(fetcher))

	watchURL := url.QueryEscape("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	w := get(t, router, "/api/video-info?url="+watchURL, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[VideoInfoResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "dQw4w9WgXcQ", resp.VideoID)
	assert.Equal(t, "Test Video", resp.VideoInfo.Title)
}

func TestInvalidURLRejected(t *testing.T) {
	router := NewRouter(newTestService(&stubFetcher{ready: true}))

	for _, target := range []string{
		"/api/video-info?url=not-a-video",
		"/api/video-info",
		"/api/analyze?url=https%3A%2F%2Fexample.com%2Fclip",
	} {
		w := get(t, router, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "target %s", target)
		body := decode[ErrorResponse](t, w)
		assert.Contains(t, body.Error, "Invalid YouTube URL")
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), stats: exampleStats(), ready: true}
	router := NewRouter(newTestService(fetcher))

	w := get(t, router, "/api/analyze?url=dQw4w9WgXcQ&max_comments=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[AnalyzeResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.CommentsAnalyzed)
	assert.Equal(t, 3, resp.Analysis.Summary.Total)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing api key", clients.ErrAPIKeyMissing, http.StatusServiceUnavailable},
		{"video not found", clients.ErrVideoNotFound, http.StatusNotFound},
		{"quota exceeded", clients.ErrQuotaExceeded, http.StatusTooManyRequests},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(newTestService(&stubFetcher{err: tt.err, ready: true}))

			w := get(t, router, "/api/analyze?url=dQw4w9WgXcQ", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode[ErrorResponse](t, w)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestMaxCommentsValidation(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), ready: true}
	router := NewRouter(newTestService(fetcher))

	for _, bad := range []string{"-1", "abc", "1.5"} {
		w := get(t, router, "/api/comments?url=dQw4w9WgXcQ&max_comments="+bad, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "max_comments=%s", bad)
	}

	w := get(t, router, "/api/comments?url=dQw4w9WgXcQ&max_comments=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[CommentsResponse](t, w)
	assert.Equal(t, 2, resp.CommentCount)
}

func TestSearchEndpointRequiresQuery(t *testing.T) {
	router := NewRouter(newTestService(&stubFetcher{ready: true}))

	w := get(t, router, "/api/comments/search?url=dQw4w9WgXcQ", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[ErrorResponse](t, w)
	assert.Contains(t, body.Error, "q")
}

func TestSearchEndpointFilter(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), ready: true}
	router := NewRouter(newTestService(fetcher))

	// A recognized filter narrows the results.
	w := get(t, router, "/api/comments/search?url=dQw4w9WgXcQ&q=video&sentiment=negative", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[SearchResponse](t, w)
	assert.Equal(t, "negative", resp.SentimentFilter)
	assert.Equal(t, 1, resp.ResultCount)
	assert.Equal(t, "c2", resp.Results[0].ID)

	// An unknown filter value is dropped rather than rejected.
	w = get(t, router, "/api/comments/search?url=dQw4w9WgXcQ&q=video&sentiment=bogus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decode[SearchResponse](t, w)
	assert.Empty(t, resp.SentimentFilter)
	assert.Equal(t, 1, resp.ResultCount)
}

func TestRequestIDPropagation(t *testing.T) {
	router := NewRouter(newTestService(&stubFetcher{ready: true}))

	w := get(t, router, "/api/health", map[string]string{HeaderRequestID: "trace-42"})
	assert.Equal(t, "trace-42", w.Header().Get(HeaderRequestID), "inbound request IDs are honored")

	w = get(t, router, "/api/health", nil)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID), "missing request IDs are minted")
}
