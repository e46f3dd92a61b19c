package api

import (
	"net/http"
)

type salesReportPayload struct {
	Date         string         `json:"date"`
	TotalSales   float64        `json:"totalSales"`
	OrderCount   int            `json:"orderCount"`
	ProductsSold map[string]int `json:"productsSold"`
}

type salesReportResponse struct {
	Success bool               `json:"success"`
	Report  salesReportPayload `json:"report"`
}

// SalesReport handles GET /api/reports/sales. The date param is optional;
// when omitted the report covers all dates. Reports accept no user filter;
// per-user views go through order history.
func (h *Handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reports.Sales(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, salesReportResponse{
		Success: true,
		Report: salesReportPayload{
			Date:         rep.Date,
			TotalSales:   rep.TotalSales.InexactFloat64(),
			OrderCount:   rep.OrderCount,
			ProductsSold: rep.ProductsSold,
		},
	})
}
