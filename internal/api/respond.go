package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zctx.From(r.Context()).Error("encode response", zap.Error(err))
	}
}

// failure is the envelope for every error response.
type failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeError writes a failure envelope with the given status code.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, failure{Success: false, Error: msg})
}

// writeInternalError logs the underlying error and responds 500 with a
// generic message so store details never leak to clients.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	zctx.From(r.Context()).Error("request failed", zap.Error(err))
	writeError(w, r, http.StatusInternalServerError, "internal error")
}
