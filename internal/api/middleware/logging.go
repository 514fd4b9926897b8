package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lyricsapi/internal/lib/logger/utils"
)

const RequestIDHeader = "X-Request-ID"

// AccessLog writes one log line per request once the response is done.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		m := httpsnoop.CaptureMetrics(next, w, r)

		utils.Logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", m.Code),
			zap.Int64("bytes", m.Written),
			zap.Duration("latency", m.Duration),
			zap.String("remote", r.RemoteAddr),
			zap.String("user_agent", r.UserAgent()),
		)
	})
}
