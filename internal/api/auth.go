package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/calderon/cafepos/internal/domain/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type lastAccessPayload struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type loginUserPayload struct {
	Username   string            `json:"username"`
	Role       string            `json:"role"`
	LastAccess lastAccessPayload `json:"lastAccess"`
}

type loginResponse struct {
	Success bool             `json:"success"`
	User    loginUserPayload `json:"user"`
}

// Login handles POST /api/login. The returned lastAccess holds the previous
// successful login, not the one being processed.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUnknownAccount):
			writeError(w, r, http.StatusNotFound, "account not found")
		case errors.Is(err, auth.ErrInvalidPassword):
			writeError(w, r, http.StatusUnauthorized, "invalid password")
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, r, http.StatusOK, loginResponse{
		Success: true,
		User: loginUserPayload{
			Username: account.Username,
			Role:     account.Role,
			LastAccess: lastAccessPayload{
				Date: account.LastAccessDate,
				Time: account.LastAccessTime,
			},
		},
	})
}
