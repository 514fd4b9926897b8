package lookup_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lyricsapi/internal/api/handlers/lookup"
	"lyricsapi/internal/models"
	mock_musicapi "lyricsapi/internal/musicapi/mocks"
	"lyricsapi/internal/service"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type handlerCase struct {
	name           string
	target         string
	mockMusicAPIFn func(m *mock_musicapi.MockMusicAPI)
	expectedStatus int
	expectedBody   string
}

func runHandlerCases(t *testing.T, cases []handlerCase, pick func(h *lookup.LookupHandlers) http.HandlerFunc) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMusicAPIClient := mock_musicapi.NewMockMusicAPI(ctrl)
			tc.mockMusicAPIFn(mockMusicAPIClient)

			handler := lookup.NewLookupHandlers(service.NewLyricsService(mockMusicAPIClient))

			req := httptest.NewRequest("GET", tc.target, nil)
			w := httptest.NewRecorder()

			pick(handler)(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestGetLyricsHandler_Unit(t *testing.T) {
	song := models.Song{ID: 1, Title: "Test Song", ArtistName: "Test Group", URL: "https://genius.com/test", ImageURL: "http://img/1.png"}

	runHandlerCases(t, []handlerCase{
		{
			name:   "Valid request",
			target: "/lyrics?song=test",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {
				m.EXPECT().SearchSongs(gomock.Any(), "test").Return([]models.Song{song}, nil)
				m.EXPECT().FetchLyrics(gomock.Any(), song).Return("[Verse 1]Hello there[Chorus]La la", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"song":"Test Song","artist":"Test Group","lyrics":"[Verse 1]Hello there\n[Chorus]La la","album":"Unknown","releaseDate":"Unknown","image":"http://img/1.png"}`,
		},
		{
			name:           "Missing song parameter",
			target:         "/lyrics",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Song parameter is required"}`,
		},
		{
			name:           "Empty song parameter",
			target:         "/lyrics?song=",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Song parameter is required"}`,
		},
		{
			name:   "No lyrics found",
			target: "/lyrics?song=UnknownXYZ123",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {
				m.EXPECT().SearchSongs(gomock.Any(), "UnknownXYZ123").Return([]models.Song{}, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"No lyrics found"}`,
		},
		{
			name:   "Upstream error does not leak",
			target: "/lyrics?song=test",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {
				m.EXPECT().SearchSongs(gomock.Any(), "test").Return([]models.Song{song}, nil)
				m.EXPECT().FetchLyrics(gomock.Any(), song).Return("", errors.New("secret upstream detail"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"An error occurred while fetching lyrics"}`,
		},
	}, func(h *lookup.LookupHandlers) http.HandlerFunc { return h.GetLyricsHandler })
}

func TestGetArtistHandler_Unit(t *testing.T) {
	runHandlerCases(t, []handlerCase{
		{
			name:   "Valid request",
			target: "/artist?name=queen",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {
				m.EXPECT().SearchArtists(gomock.Any(), "queen").Return([]models.Artist{{ID: 563, Name: "Queen"}}, nil)
				m.EXPECT().FetchArtist(gomock.Any(), 563).Return(&models.Artist{
					ID:          563,
					Name:        "Queen",
					ImageURL:    "http://img/q.jpg",
					Description: "British rock band.",
					SocialMedia: map[string]string{"instagram": "https://www.instagram.com/officialqueenmusic"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"name":"Queen","image":"http://img/q.jpg","description":"British rock band.","socialMedia":{"instagram":"https://www.instagram.com/officialqueenmusic"}}`,
		},
		{
			name:           "Missing name parameter",
			target:         "/artist",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Artist name parameter is required"}`,
		},
		{
			name:   "No artist found",
			target: "/artist?name=nobody",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {
				m.EXPECT().SearchArtists(gomock.Any(), "nobody").Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"No artist found"}`,
		},
		{
			name:   "Upstream error",
			target: "/artist?name=queen",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {
				m.EXPECT().SearchArtists(gomock.Any(), "queen").Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"An error occurred while fetching artist information"}`,
		},
	}, func(h *lookup.LookupHandlers) http.HandlerFunc { return h.GetArtistHandler })
}

func TestSearchSongsHandler_Unit(t *testing.T) {
	runHandlerCases(t, []handlerCase{
		{
			name:   "Results",
			target: "/search?q=test",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {
				m.EXPECT().SearchSongs(gomock.Any(), "test").Return([]models.Song{
					{Title: "One", ArtistName: "A", AlbumName: "Album", ReleaseDate: "2001"},
					{Title: "Two", ArtistName: "B", ImageURL: "http://img/2.png"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"title":"One","artist":"A","album":"Album","releaseDate":"2001"},{"title":"Two","artist":"B","album":"Unknown","releaseDate":"Unknown","image":"http://img/2.png"}]`,
		},
		{
			name:   "No matches is an empty array",
			target: "/search?q=test",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {
				m.EXPECT().SearchSongs(gomock.Any(), "test").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Missing query",
			target:         "/search",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Search query is required"}`,
		},
		{
			name:   "Upstream error",
			target: "/search?q=test",
			mockMusicAPIFn: func(m *mock_musicapi.MockMusicAPI) {
				m.EXPECT().SearchSongs(gomock.Any(), "test").Return(nil, errors.New("bad gateway"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"An error occurred while searching for songs"}`,
		},
	}, func(h *lookup.LookupHandlers) http.HandlerFunc { return h.SearchSongsHandler })
}

func TestRootHandler_Unit(t *testing.T) {
	handler := lookup.NewLookupHandlers(nil)
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.RootHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to the Lyrics API","version":"1.1.0"}`, w.Body.String())
}

func TestHealthCheckHandler_Unit(t *testing.T) {
	handler := lookup.NewLookupHandlers(nil)
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.HealthCheckHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestNotFoundHandler_Unit(t *testing.T) {
	handler := lookup.NewLookupHandlers(nil)
	req := httptest.NewRequest("GET", "/foo", nil)
	w := httptest.NewRecorder()

	handler.NotFoundHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, w.Body.String())
}
