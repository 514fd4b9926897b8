package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lyricsapi/internal/api"
	"lyricsapi/internal/api/handlers/lookup"
	"lyricsapi/internal/api/middleware"
	"lyricsapi/internal/models"
	mock_musicapi "lyricsapi/internal/musicapi/mocks"
	"lyricsapi/internal/service"
)

func newTestRouter(t *testing.T, limit int) (http.Handler, *mock_musicapi.MockMusicAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockMusicAPIClient := mock_musicapi.NewMockMusicAPI(ctrl)
	handlers := lookup.NewLookupHandlers(service.NewLyricsService(mockMusicAPIClient))
	return api.NewRouter(handlers, middleware.NewRateLimiter(15*time.Minute, limit)), mockMusicAPIClient
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Routes(t *testing.T) {
	router, mockMusicAPIClient := newTestRouter(t, 100)
	mockMusicAPIClient.EXPECT().SearchSongs(gomock.Any(), "test").Return([]models.Song{}, nil)

	testCases := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		expectedBody   string
	}{
		{"Root", "GET", "/", http.StatusOK, `{"message":"Welcome to the Lyrics API","version":"1.1.0"}`},
		{"Lyrics without song", "GET", "/lyrics", http.StatusBadRequest, `{"error":"Song parameter is required"}`},
		{"Artist without name", "GET", "/artist", http.StatusBadRequest, `{"error":"Artist name parameter is required"}`},
		{"Search without query", "GET", "/search", http.StatusBadRequest, `{"error":"Search query is required"}`},
		{"Search without matches", "GET", "/search?q=test", http.StatusOK, `[]`},
		{"Unknown route", "GET", "/foo", http.StatusNotFound, `{"error":"Not Found"}`},
		{"Wrong method", "POST", "/lyrics", http.StatusNotFound, `{"error":"Not Found"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(router, tc.method, tc.target)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, 100)

	w := serve(router, "GET", "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_RateLimitBoundary(t *testing.T) {
	router, _ := newTestRouter(t, 100)

	for i := 1; i <= 100; i++ {
		w := serve(router, "GET", "/")
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := serve(router, "GET", "/")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many requests from this IP, please try again later.", w.Body.String())
}

func TestRouter_RateLimitAppliesToUnmatchedRoutes(t *testing.T) {
	router, _ := newTestRouter(t, 1)

	assert.Equal(t, http.StatusNotFound, serve(router, "GET", "/foo").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, "GET", "/").Code)
}

func TestRouter_Preflight(t *testing.T) {
	router, _ := newTestRouter(t, 100)

	req := httptest.NewRequest("OPTIONS", "/lyrics", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_BareOptions(t *testing.T) {
	router, _ := newTestRouter(t, 100)

	w := serve(router, "OPTIONS", "/lyrics")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MalformedJSONBody(t *testing.T) {
	router, _ := newTestRouter(t, 100)

	req := httptest.NewRequest("POST", "/lyrics", bytes.NewBufferString(`{"a":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong!","details":"unexpected end of JSON input"}`, w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRouter_SwaggerDoc(t *testing.T) {
	router, _ := newTestRouter(t, 100)

	w := serve(router, "GET", "/swagger/doc.json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/lyrics"`)
	assert.Contains(t, w.Body.String(), `"Lyrics API"`)
}
