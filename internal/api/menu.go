package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/calderon/cafepos/internal/domain/menu"
)

type menuItemResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type menuResponse struct {
	Success bool               `json:"success"`
	Menu    []menuItemResponse `json:"menu"`
}

type addMenuItemRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type addMenuItemResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ListMenu handles GET /api/menu.
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	resp := menuResponse{
		Success: true,
		Menu:    make([]menuItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Menu[i] = menuItemResponse{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price.InexactFloat64(),
		}
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// AddMenuItem handles POST /api/menu.
func (h *Handler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	var req addMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.menu.Add(r.Context(), req.Name, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrMissingName),
			errors.Is(err, menu.ErrNegativePrice):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, r, http.StatusOK, addMenuItemResponse{Success: true, ID: item.ID})
}
