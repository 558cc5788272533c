// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format of record dates.
const dateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// PeriodQuery holds the query parameters shared by report endpoints.
// Month is one-based.
type PeriodQuery struct {
	Currency string `form:"currency" binding:"omitempty,oneof=USD INR"`
	Month    int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year     int    `form:"year" binding:"omitempty,min=1900,max=3000"`
}

// PeriodResponse describes the month a report covers.
type PeriodResponse struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Label string `json:"label"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func percent(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
