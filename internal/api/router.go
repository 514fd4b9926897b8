package api

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"lyricsapi/internal/api/handlers/lookup"
	"lyricsapi/internal/api/middleware"
	_ "lyricsapi/swagger" // Import generated swagger docs
)

// NewRouter registers the routes and wraps them in the middleware chain.
// Unmatched paths and methods still pass through the chain.
func NewRouter(h *lookup.LookupHandlers, limiter *middleware.RateLimiter) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", h.RootHandler).Methods("GET", "HEAD")
	router.HandleFunc("/health", h.HealthCheckHandler).Methods("GET", "HEAD")
	router.HandleFunc("/lyrics", h.GetLyricsHandler).Methods("GET", "HEAD")
	router.HandleFunc("/artist", h.GetArtistHandler).Methods("GET", "HEAD")
	router.HandleFunc("/search", h.SearchSongsHandler).Methods("GET", "HEAD")

	// Swagger documentation
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.NotFoundHandler = http.HandlerFunc(h.NotFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(h.NotFoundHandler)

	return middleware.Chain(router,
		middleware.SecurityHeaders,
		middleware.AccessLog,
		middleware.CORS,
		middleware.JSONBody,
		middleware.RateLimit(limiter),
		middleware.Recover,
	)
}
