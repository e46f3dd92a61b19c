package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/calderon/cafepos/internal/domain/order"
)

// instantFormat renders the authoritative order instant in responses.
const instantFormat = "2006-01-02 15:04:05"

type lineItemPayload struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"lineSubtotal"`
}

type submitOrderRequest struct {
	User  string            `json:"user"`
	Items []lineItemPayload `json:"items"`
}

type lineItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"lineSubtotal"`
}

type orderResponse struct {
	ID          string             `json:"id"`
	User        string             `json:"user"`
	Items       []lineItemResponse `json:"items"`
	Subtotal    float64            `json:"subtotal"`
	Tax         float64            `json:"tax"`
	Total       float64            `json:"total"`
	Date        string             `json:"submittedAtDate"`
	Time        string             `json:"submittedAtTime"`
	SubmittedAt string             `json:"submittedAtInstant"`
}

type submitOrderResponse struct {
	Success bool          `json:"success"`
	OrderID string        `json:"orderId"`
	Order   orderResponse `json:"order"`
}

type orderHistoryResponse struct {
	Success bool            `json:"success"`
	Orders  []orderResponse `json:"orders"`
}

// SubmitOrder handles POST /api/orders.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]order.LineItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = order.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		}
	}

	o, err := h.orders.Submit(r.Context(), req.User, items)
	if err != nil {
		var itemErr *order.InvalidItemError
		switch {
		case errors.Is(err, order.ErrEmptyItems),
			errors.Is(err, order.ErrMissingAccount):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.As(err, &itemErr):
			writeError(w, r, http.StatusBadRequest, itemErr.Error())
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, r, http.StatusOK, submitOrderResponse{
		Success: true,
		OrderID: o.ID,
		Order:   toOrderResponse(*o),
	})
}

// OrderHistory handles GET /api/orders. Both query params are optional and
// combined with AND; results are newest first, capped at order.HistoryLimit.
func (h *Handler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	f := order.Filter{
		Account: r.URL.Query().Get("user"),
		Date:    r.URL.Query().Get("date"),
	}

	orders, err := h.orders.History(r.Context(), f)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	resp := orderHistoryResponse{
		Success: true,
		Orders:  make([]orderResponse, len(orders)),
	}
	for i, o := range orders {
		resp.Orders[i] = toOrderResponse(o)
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func toOrderResponse(o order.Order) orderResponse {
	items := make([]lineItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = lineItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal.InexactFloat64(),
		}
	}
	return orderResponse{
		ID:          o.ID,
		User:        o.Account,
		Items:       items,
		Subtotal:    o.Subtotal.InexactFloat64(),
		Tax:         o.Tax.InexactFloat64(),
		Total:       o.Total.InexactFloat64(),
		Date:        o.SubmittedDate,
		Time:        o.SubmittedTime,
		SubmittedAt: o.SubmittedAt.Format(instantFormat),
	}
}
