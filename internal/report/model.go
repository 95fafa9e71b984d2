// Package report builds the per-customer balance summaries: lifetime totals
// as JSON and the monthly CSV export.
package report

import "github.com/shopspring/decimal"

// SummaryRow is one customer in the lifetime summary.
// swagger:model SummaryRow
type SummaryRow struct {
	Phone        string  `json:"phone"         example:"555-1111"`
	Name         string  `json:"name"          example:"Asha"`
	TotalOrdered float64 `json:"total_ordered" example:"25.50"`
	TotalPaid    float64 `json:"total_paid"    example:"10.00"`
	Balance      float64 `json:"balance"       example:"15.50"`
}

// MonthlyRow is one customer in the monthly export: in-month totals next to
// the lifetime totals the balance column is computed from.
type MonthlyRow struct {
	Phone        string
	Name         string
	OrderedMonth decimal.Decimal
	PaidMonth    decimal.Decimal
	OrderedAll   decimal.Decimal
	PaidAll      decimal.Decimal
}

// Summarize rounds the lifetime totals to 2 decimals and computes the
// balance as ordered minus paid.
func Summarize(phone, name string, ordered, paid decimal.Decimal) SummaryRow {
	return SummaryRow{
		Phone:        phone,
		Name:         name,
		TotalOrdered: ordered.Round(2).InexactFloat64(),
		TotalPaid:    paid.Round(2).InexactFloat64(),
		Balance:      ordered.Sub(paid).Round(2).InexactFloat64(),
	}
}
