package response

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
		return
	}
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	type errResponse struct {
		Error string `json:"error"`
	}
	JSON(w, statusCode, errResponse{Error: message})
}

// ErrorWithDetails is reserved for the catch-all handlers; route handlers
// must not expose upstream details.
func ErrorWithDetails(w http.ResponseWriter, statusCode int, message, details string) {
	type errResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	JSON(w, statusCode, errResponse{Error: message, Details: details})
}

func Text(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write([]byte(body))
}
