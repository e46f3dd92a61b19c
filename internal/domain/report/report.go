// Package report derives sales summaries from the order ledger. Reports are
// ephemeral views computed per request; nothing here is persisted.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/calderon/cafepos/internal/domain/order"
)

// AllDates is the Date value of a report generated without a date filter.
const AllDates = "all"

// Report summarizes a set of orders: the money taken, how many orders were
// placed, and how many units of each product were sold.
type Report struct {
	Date         string
	TotalSales   decimal.Decimal
	OrderCount   int
	ProductsSold map[string]int
}

// Aggregate folds orders into a Report labeled with the given date filter.
// The fold is pure and commutative: input order does not affect the result.
// An empty input yields a zero report with an empty ProductsSold map.
func Aggregate(date string, orders []order.Order) Report {
	r := Report{
		Date:         date,
		TotalSales:   decimal.Zero,
		ProductsSold: make(map[string]int),
	}

	for _, o := range orders {
		r.TotalSales = r.TotalSales.Add(o.Total)
		r.OrderCount++
		for _, item := range o.Items {
			r.ProductsSold[item.Name] += item.Quantity
		}
	}

	return r
}
