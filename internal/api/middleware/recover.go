package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/felixge/httpsnoop"
	"go.uber.org/zap"

	"lyricsapi/internal/lib/logger/utils"
	"lyricsapi/internal/lib/response"
)

const genericErrorMessage = "Something went wrong!"

// Recover turns a handler panic into a 500 carrying the panic message.
// When the handler already started its response, the panic is only logged.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wroteHeader := false
		tracked := httpsnoop.Wrap(w, httpsnoop.Hooks{
			WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
				return func(code int) {
					wroteHeader = true
					next(code)
				}
			},
			Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
				return func(b []byte) (int, error) {
					wroteHeader = true
					return next(b)
				}
			},
			ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
				return func(src io.Reader) (int64, error) {
					wroteHeader = true
					return next(src)
				}
			},
		})

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			utils.Logger.Error("panic recovered",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Bool("response_started", wroteHeader),
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()),
			)
			if wroteHeader {
				return
			}
			response.ErrorWithDetails(w, http.StatusInternalServerError, genericErrorMessage, fmt.Sprint(rec))
		}()
		next.ServeHTTP(tracked, r)
	})
}
