// internal/api/handlers/lookup/lookup_handlers.go
package lookup

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"lyricsapi/internal/lib/logger/utils"
	"lyricsapi/internal/lib/response"
	"lyricsapi/internal/models"
	"lyricsapi/internal/service"
)

const (
	welcomeMessage = "Welcome to the Lyrics API"
	Version        = "1.1.0"
)

type LookupHandlers struct {
	lyricsService *service.LyricsService
}

func NewLookupHandlers(lyricsService *service.LyricsService) *LookupHandlers {
	return &LookupHandlers{
		lyricsService: lyricsService,
	}
}

// @Summary API info
// @Description Welcome message and API version.
// @Tags meta
// @Produce json
// @Success 200 {object} models.RootInfo
// @Router / [get]
func (h *LookupHandlers) RootHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, models.RootInfo{Message: welcomeMessage, Version: Version})
}

// @Summary Get song lyrics
// @Description Search for a song and return the lyrics of the first match.
// @Tags lyrics
// @Produce json
// @Param song query string true "Song to search for"
// @Success 200 {object} models.LyricsResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lyrics [get]
func (h *LookupHandlers) GetLyricsHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetLyricsHandler called")

	songName := r.URL.Query().Get("song")
	if songName == "" {
		response.Error(w, http.StatusBadRequest, "Song parameter is required")
		return
	}

	result, err := h.lyricsService.GetLyrics(r.Context(), songName)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "No lyrics found")
			return
		}
		utils.Logger.Error("GetLyricsHandler - lyricsService.GetLyrics failed", zap.Error(err), zap.String("song", songName))
		response.Error(w, http.StatusInternalServerError, "An error occurred while fetching lyrics")
		return
	}

	response.JSON(w, http.StatusOK, result)
	utils.Logger.Debug("GetLyricsHandler - lyrics returned", zap.String("song", result.Song), zap.String("artist", result.Artist))
}

// @Summary Get artist info
// @Description Search for an artist and return the first match with description and social links.
// @Tags artists
// @Produce json
// @Param name query string true "Artist name"
// @Success 200 {object} models.ArtistResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /artist [get]
func (h *LookupHandlers) GetArtistHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("GetArtistHandler called")

	artistName := r.URL.Query().Get("name")
	if artistName == "" {
		response.Error(w, http.StatusBadRequest, "Artist name parameter is required")
		return
	}

	result, err := h.lyricsService.GetArtist(r.Context(), artistName)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "No artist found")
			return
		}
		utils.Logger.Error("GetArtistHandler - lyricsService.GetArtist failed", zap.Error(err), zap.String("name", artistName))
		response.Error(w, http.StatusInternalServerError, "An error occurred while fetching artist information")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// @Summary Search songs
// @Description Search songs by free text. No match yields an empty array.
// @Tags lyrics
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.SongResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /search [get]
func (h *LookupHandlers) SearchSongsHandler(w http.ResponseWriter, r *http.Request) {
	utils.Logger.Info("SearchSongsHandler called")

	query := r.URL.Query().Get("q")
	if query == "" {
		response.Error(w, http.StatusBadRequest, "Search query is required")
		return
	}

	results, err := h.lyricsService.SearchSongs(r.Context(), query)
	if err != nil {
		utils.Logger.Error("SearchSongsHandler - lyricsService.SearchSongs failed", zap.Error(err), zap.String("q", query))
		response.Error(w, http.StatusInternalServerError, "An error occurred while searching for songs")
		return
	}

	response.JSON(w, http.StatusOK, results)
	utils.Logger.Debug("SearchSongsHandler - songs found", zap.Int("count", len(results)))
}

func (h *LookupHandlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *LookupHandlers) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusNotFound, "Not Found")
}

// ErrorResponse documents the error body for swagger.
type ErrorResponse struct {
	Error string `json:"error"`
}
