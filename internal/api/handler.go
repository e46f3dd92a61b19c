// Package api exposes the POS backend over HTTP. Handlers validate request
// bodies at the boundary, delegate to the domain services, and wrap every
// response in a success-flag envelope. Domain errors are mapped to status
// codes here and nowhere else.
package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/calderon/cafepos/internal/domain/auth"
	"github.com/calderon/cafepos/internal/domain/menu"
	"github.com/calderon/cafepos/internal/domain/order"
	"github.com/calderon/cafepos/internal/domain/report"
)

// Handler holds the domain services behind the HTTP surface.
type Handler struct {
	auth    *auth.Service
	menu    *menu.Service
	orders  *order.Service
	reports *report.Service
}

// NewHandler constructs a Handler with the required domain services.
func NewHandler(
	authSvc *auth.Service,
	menuSvc *menu.Service,
	orderSvc *order.Service,
	reportSvc *report.Service,
) *Handler {
	return &Handler{
		auth:    authSvc,
		menu:    menuSvc,
		orders:  orderSvc,
		reports: reportSvc,
	}
}

// NewRouter registers all API routes under /api. Middleware is applied by
// the caller around the returned router.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)

		r.Get("/menu", h.ListMenu)
		r.Post("/menu", h.AddMenuItem)

		r.Post("/orders", h.SubmitOrder)
		r.Get("/orders", h.OrderHistory)

		r.Get("/reports/sales", h.SalesReport)
	})

	return r
}
