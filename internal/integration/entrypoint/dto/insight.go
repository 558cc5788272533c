package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/application/usecase/insight"
	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
)

// SummaryQuery holds the query parameters of GET /insights/summary.
type SummaryQuery struct {
	PeriodQuery
	Category string `form:"category"`
}

// CheckExpenseRequest represents the request body of POST /insights/check-expense.
type CheckExpenseRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	Month    int             `json:"month,omitempty"`
	Year     int             `json:"year,omitempty"`
}

// ComparisonRowResponse represents one budget-versus-actual row.
type ComparisonRowResponse struct {
	BudgetID           string  `json:"budget_id"`
	Category           string  `json:"category"`
	Budgeted           string  `json:"budgeted"`
	Spent              string  `json:"spent"`
	Remaining          string  `json:"remaining"`
	RemainingClamped   string  `json:"remaining_clamped"`
	Percentage         float64 `json:"percentage"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Status             string  `json:"status"`
}

// ComparisonResponse represents the response of GET /insights/comparison.
type ComparisonResponse struct {
	Currency string                  `json:"currency"`
	Period   PeriodResponse          `json:"period"`
	Rows     []ComparisonRowResponse `json:"rows"`
}

// InsightsResponse represents the response of GET /insights/summary.
type InsightsResponse struct {
	Currency             string         `json:"currency"`
	Period               PeriodResponse `json:"period"`
	Category             string         `json:"category,omitempty"`
	TotalBudget          string         `json:"total_budget"`
	TotalSpent           string         `json:"total_spent"`
	BudgetRemaining      string         `json:"budget_remaining"`
	ActualRemaining      string         `json:"actual_remaining"`
	CategoriesOverBudget int            `json:"categories_over_budget"`
	BudgetUtilization    float64        `json:"budget_utilization"`
}

// AvailableCategoriesResponse represents the response of GET /insights/available-categories.
type AvailableCategoriesResponse struct {
	Currency   string             `json:"currency"`
	Period     PeriodResponse     `json:"period"`
	Categories []CategoryResponse `json:"categories"`
}

// CheckExpenseResponse represents the response of POST /insights/check-expense.
type CheckExpenseResponse struct {
	Period         PeriodResponse `json:"period"`
	HasBudget      bool           `json:"has_budget"`
	Exceeded       bool           `json:"exceeded"`
	OverAmount     string         `json:"over_amount"`
	CurrentSpent   string         `json:"current_spent"`
	Budgeted       string         `json:"budgeted"`
	NewTotalSpent  string         `json:"new_total_spent"`
	AvailableFunds string         `json:"available_funds"`
	ExceedsFunds   bool           `json:"exceeds_funds"`
	Shortfall      string         `json:"shortfall"`
}

// TotalsResponse groups income and expense totals.
type TotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// CategorySpendResponse is the spend of one category.
type CategorySpendResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Count    int    `json:"count"`
}

// MonthTrendResponse is one month of the trend series.
type MonthTrendResponse struct {
	Label    string `json:"label"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// DashboardResponse represents the response of GET /insights/dashboard.
type DashboardResponse struct {
	Currency             string                  `json:"currency"`
	Period               PeriodResponse          `json:"period"`
	Totals               TotalsResponse          `json:"totals"`
	AllTime              TotalsResponse          `json:"all_time"`
	SavingsRate          float64                 `json:"savings_rate"`
	PreviousExpenses     string                  `json:"previous_expenses"`
	MonthlyChange        float64                 `json:"monthly_change"`
	AverageDailySpending string                  `json:"average_daily_spending"`
	RecordCount          int                     `json:"record_count"`
	Categories           []CategorySpendResponse `json:"categories"`
	Recent               []RecordResponse        `json:"recent"`
	Trend                []MonthTrendResponse    `json:"trend"`
}

func toPeriodResponse(p budgeting.Period) PeriodResponse {
	return PeriodResponse{
		Month: p.MonthIndex + 1,
		Year:  p.Year,
		Label: p.Label(),
	}
}

func toTotalsResponse(t budgeting.Totals) TotalsResponse {
	return TotalsResponse{
		Income:   money(t.Income),
		Expenses: money(t.Expenses),
		Net:      money(t.Net),
	}
}

// ToComparisonResponse converts the comparison output to a ComparisonResponse DTO.
func ToComparisonResponse(output *insight.GetBudgetComparisonOutput) ComparisonResponse {
	rows := make([]ComparisonRowResponse, len(output.Rows))
	for i, r := range output.Rows {
		rows[i] = ComparisonRowResponse{
			BudgetID:           r.BudgetID.String(),
			Category:           r.Category,
			Budgeted:           money(r.Budgeted),
			Spent:              money(r.Spent),
			Remaining:          money(r.Remaining),
			RemainingClamped:   money(r.RemainingClamped),
			Percentage:         percent(r.Percentage),
			ProgressPercentage: percent(r.ProgressPercentage()),
			Status:             string(r.Status),
		}
	}

	return ComparisonResponse{
		Currency: string(output.Currency),
		Period:   toPeriodResponse(output.Period),
		Rows:     rows,
	}
}

// ToInsightsResponse converts the insights output to an InsightsResponse DTO.
func ToInsightsResponse(output *insight.GetSpendingInsightsOutput) InsightsResponse {
	in := output.Insights
	return InsightsResponse{
		Currency:             string(output.Currency),
		Period:               toPeriodResponse(output.Period),
		Category:             output.Category,
		TotalBudget:          money(in.TotalBudget),
		TotalSpent:           money(in.TotalSpent),
		BudgetRemaining:      money(in.BudgetRemaining),
		ActualRemaining:      money(in.ActualRemaining),
		CategoriesOverBudget: in.CategoriesOverBudget,
		BudgetUtilization:    percent(in.BudgetUtilization),
	}
}

// ToAvailableCategoriesResponse converts the output to an AvailableCategoriesResponse DTO.
func ToAvailableCategoriesResponse(output *insight.GetAvailableCategoriesOutput) AvailableCategoriesResponse {
	items := make([]CategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		items[i] = CategoryResponse{
			Value: c.Value,
			Label: c.Label,
			Icon:  c.Icon,
			Color: c.Color,
		}
	}
	return AvailableCategoriesResponse{
		Currency:   string(output.Currency),
		Period:     toPeriodResponse(output.Period),
		Categories: items,
	}
}

// ToCheckExpenseResponse converts the output to a CheckExpenseResponse DTO.
func ToCheckExpenseResponse(output *insight.CheckExpenseOutput) CheckExpenseResponse {
	return CheckExpenseResponse{
		Period:         toPeriodResponse(output.Period),
		HasBudget:      output.Budget.HasBudget,
		Exceeded:       output.Budget.Exceeded,
		OverAmount:     money(output.Budget.OverAmount),
		CurrentSpent:   money(output.Budget.CurrentSpent),
		Budgeted:       money(output.Budget.Budgeted),
		NewTotalSpent:  money(output.Budget.NewTotalSpent),
		AvailableFunds: money(output.Funds.Available),
		ExceedsFunds:   output.Funds.Exceeded,
		Shortfall:      money(output.Funds.Shortfall),
	}
}

// ToDashboardResponse converts the dashboard output to a DashboardResponse DTO.
func ToDashboardResponse(output *insight.GetDashboardOutput) DashboardResponse {
	s := output.Summary

	categories := make([]CategorySpendResponse, len(s.Categories))
	for i, c := range s.Categories {
		categories[i] = CategorySpendResponse{
			Category: c.Category,
			Amount:   money(c.Amount),
			Count:    c.Count,
		}
	}

	trend := make([]MonthTrendResponse, len(output.Trend))
	for i, m := range output.Trend {
		trend[i] = MonthTrendResponse{
			Label:    m.Label,
			Month:    m.Period.MonthIndex + 1,
			Year:     m.Period.Year,
			Income:   money(m.Income),
			Expenses: money(m.Expenses),
			Total:    money(m.Total),
			Count:    m.Count,
		}
	}

	return DashboardResponse{
		Currency:             string(output.Currency),
		Period:               toPeriodResponse(s.Period),
		Totals:               toTotalsResponse(s.Totals),
		AllTime:              toTotalsResponse(s.AllTime),
		SavingsRate:          percent(s.SavingsRate),
		PreviousExpenses:     money(s.PreviousExpenses),
		MonthlyChange:        percent(s.MonthlyChange),
		AverageDailySpending: money(s.AverageDailySpending),
		RecordCount:          s.RecordCount,
		Categories:           categories,
		Recent:               ToRecordListResponse(s.Recent).Records,
		Trend:                trend,
	}
}
