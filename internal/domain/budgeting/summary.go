package budgeting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// recentLimit caps the number of recent records carried by a PeriodSummary.
const recentLimit = 5

// Totals groups signed income and absolute expense sums.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// CategorySpend is the absolute expense total of one category.
type CategorySpend struct {
	Key      string
	Category string
	Amount   decimal.Decimal
	Count    int
}

// PeriodSummary is the dashboard view of one month.
type PeriodSummary struct {
	Period               Period
	Totals               Totals
	AllTime              Totals
	SavingsRate          decimal.Decimal
	PreviousExpenses     decimal.Decimal
	MonthlyChange        decimal.Decimal
	AverageDailySpending decimal.Decimal
	RecordCount          int
	Categories           []CategorySpend
	Recent               []*entity.Record
}

// TotalsOf splits records into income and expense sums.
func TotalsOf(records []*entity.Record) Totals {
	t := Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, r := range records {
		if r == nil {
			continue
		}
		if r.IsIncome() {
			t.Income = t.Income.Add(r.Amount)
		} else if r.IsExpense() {
			t.Expenses = t.Expenses.Add(r.Amount.Abs())
		}
	}
	t.Net = t.Income.Sub(t.Expenses)
	return t
}

// SummarizePeriod builds the dashboard summary for p. today decides how many
// days have elapsed when averaging the daily spend of the current month.
func SummarizePeriod(l *Ledger, p Period, today time.Time) PeriodSummary {
	records := l.RecordsIn(p)
	totals := TotalsOf(records)
	previous := TotalsOf(l.RecordsIn(p.Previous())).Expenses

	summary := PeriodSummary{
		Period:               p,
		Totals:               totals,
		AllTime:              TotalsOf(l.Records()),
		SavingsRate:          decimal.Zero,
		PreviousExpenses:     previous,
		MonthlyChange:        decimal.Zero,
		AverageDailySpending: decimal.Zero,
		RecordCount:          len(records),
		Categories:           categorySpend(records),
		Recent:               mostRecent(records, recentLimit),
	}

	if totals.Income.IsPositive() {
		summary.SavingsRate = totals.Net.Mul(hundred).Div(totals.Income)
	}
	if previous.IsPositive() {
		summary.MonthlyChange = totals.Expenses.Sub(previous).Mul(hundred).Div(previous)
	}
	if days := elapsedDays(p, today); days > 0 {
		summary.AverageDailySpending = totals.Expenses.Div(decimal.NewFromInt(int64(days)))
	}
	return summary
}

// elapsedDays is the full month for past periods, the day of month for the
// current one and zero for future periods.
func elapsedDays(p Period, today time.Time) int {
	current := PeriodOf(today)
	switch {
	case p == current:
		return today.UTC().Day()
	case p.Before(current):
		return p.Days()
	default:
		return 0
	}
}

func categorySpend(records []*entity.Record) []CategorySpend {
	expenses := make([]*entity.Record, 0, len(records))
	for _, r := range records {
		if r.IsExpense() {
			expenses = append(expenses, r)
		}
	}

	groups := GroupByCategory(expenses)
	out := make([]CategorySpend, 0, len(groups))
	for _, g := range groups {
		out = append(out, CategorySpend{
			Key:      g.Key,
			Category: g.Category,
			Amount:   g.Total.Abs(),
			Count:    g.Count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

func mostRecent(records []*entity.Record, limit int) []*entity.Record {
	sorted := make([]*entity.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
