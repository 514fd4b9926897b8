package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"lyricsapi/internal/lib/logger/utils"
	"lyricsapi/internal/lib/response"
)

// MaxJSONBody is the largest JSON request body accepted.
const MaxJSONBody = 100 << 10

// JSONBody validates JSON request bodies and restores them for the next
// handler. Requests without a JSON content type pass through untouched.
// Unreadable, oversize or malformed bodies get the catch-all 500 response.
func JSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody || !isJSON(r.Header.Get("Content-Type")) {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxJSONBody))
		if err != nil {
			bodyError(w, r, err)
			return
		}

		if len(bytes.TrimSpace(body)) > 0 {
			var v interface{}
			if err := json.Unmarshal(body, &v); err != nil {
				bodyError(w, r, err)
				return
			}
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func bodyError(w http.ResponseWriter, r *http.Request, err error) {
	utils.Logger.Error("request body rejected",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	response.ErrorWithDetails(w, http.StatusInternalServerError, genericErrorMessage, err.Error())
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
