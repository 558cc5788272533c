package budgeting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// CategoryAggregate is the signed total of the records sharing a category key.
type CategoryAggregate struct {
	Key      string
	Category string // display form of Key
	Total    decimal.Decimal
	Count    int
	Records  []*entity.Record
}

// MonthAggregate summarizes the records of one calendar month.
type MonthAggregate struct {
	Period   Period
	Label    string
	Income   decimal.Decimal
	Expenses decimal.Decimal // absolute value of the negative amounts
	Total    decimal.Decimal
	Count    int
}

// CalculateTotal returns the signed sum of the record amounts.
func CalculateTotal(records []*entity.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r == nil {
			continue
		}
		total = total.Add(r.Amount)
	}
	return total
}

// GroupByCategory buckets records by normalized category, preserving the order
// in which each category first appears.
func GroupByCategory(records []*entity.Record) []CategoryAggregate {
	index := make(map[string]int)
	groups := make([]CategoryAggregate, 0)

	for _, r := range records {
		if r == nil {
			continue
		}
		key := Normalize(r.Category)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CategoryAggregate{
				Key:      key,
				Category: DisplayName(key),
				Total:    decimal.Zero,
			})
		}
		groups[i].Total = groups[i].Total.Add(r.Amount)
		groups[i].Count++
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// GroupByMonth buckets records by calendar month in ascending order.
// Records without a date are skipped.
func GroupByMonth(records []*entity.Record) []MonthAggregate {
	index := make(map[Period]int)
	months := make([]MonthAggregate, 0)

	for _, r := range records {
		if r == nil || !r.HasValidDate() {
			continue
		}
		p := PeriodOf(r.Date)
		i, ok := index[p]
		if !ok {
			i = len(months)
			index[p] = i
			months = append(months, MonthAggregate{
				Period:   p,
				Label:    p.Label(),
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
				Total:    decimal.Zero,
			})
		}
		m := &months[i]
		if r.Amount.IsPositive() {
			m.Income = m.Income.Add(r.Amount)
		} else {
			m.Expenses = m.Expenses.Add(r.Amount.Abs())
		}
		m.Total = m.Total.Add(r.Amount)
		m.Count++
	}

	sort.Slice(months, func(a, b int) bool {
		return months[a].Period.Before(months[b].Period)
	})
	return months
}

// expenseTotals returns the absolute expense total per category key for records.
func expenseTotals(records []*entity.Record) map[string]decimal.Decimal {
	expenses := make([]*entity.Record, 0, len(records))
	for _, r := range records {
		if r != nil && r.IsExpense() {
			expenses = append(expenses, r)
		}
	}

	totals := make(map[string]decimal.Decimal)
	for _, g := range GroupByCategory(expenses) {
		totals[g.Key] = g.Total.Abs()
	}
	return totals
}
