package budgeting

import (
	"github.com/shopspring/decimal"
)

// Insights rolls comparison rows up into period-level indicators.
type Insights struct {
	TotalBudget          decimal.Decimal
	TotalSpent           decimal.Decimal
	BudgetRemaining      decimal.Decimal // clamped at zero
	ActualRemaining      decimal.Decimal // signed
	CategoriesOverBudget int
	BudgetUtilization    decimal.Decimal // uncapped percentage
}

// SynthesizeInsights compares the target month (zero-based) and summarizes the
// rows. A non-empty categoryFilter restricts the summary to that category.
func SynthesizeInsights(l *Ledger, targetMonth, targetYear int, categoryFilter string) Insights {
	return SummarizeRows(CompareBudgetToActual(l, targetMonth, targetYear), categoryFilter)
}

// SummarizeRows aggregates comparison rows. The filter matches the row
// category after normalization; an empty filter keeps every row.
func SummarizeRows(rows []ComparisonRow, categoryFilter string) Insights {
	out := Insights{
		TotalBudget:       decimal.Zero,
		TotalSpent:        decimal.Zero,
		BudgetRemaining:   decimal.Zero,
		ActualRemaining:   decimal.Zero,
		BudgetUtilization: decimal.Zero,
	}

	for _, row := range rows {
		if categoryFilter != "" && !SameCategory(row.Category, categoryFilter) {
			continue
		}
		out.TotalBudget = out.TotalBudget.Add(row.Budgeted)
		out.TotalSpent = out.TotalSpent.Add(row.Spent)
		if row.Status == StatusOver {
			out.CategoriesOverBudget++
		}
	}

	out.ActualRemaining = out.TotalBudget.Sub(out.TotalSpent)
	out.BudgetRemaining = decimal.Max(out.ActualRemaining, decimal.Zero)
	if out.TotalBudget.IsPositive() {
		out.BudgetUtilization = out.TotalSpent.Mul(hundred).Div(out.TotalBudget)
	}
	return out
}
