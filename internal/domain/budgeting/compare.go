package budgeting

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// Status classifies how much of a budget has been consumed.
type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusOver    Status = "over"
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
)

// ComparisonRow reports planned against actual spending for one budget.
type ComparisonRow struct {
	BudgetID uuid.UUID
	Category string // as stored on the budget
	Budgeted decimal.Decimal
	Spent    decimal.Decimal

	// Remaining keeps the sign so an overspend shows as a negative value;
	// RemainingClamped never drops below zero.
	Remaining        decimal.Decimal
	RemainingClamped decimal.Decimal

	// Percentage is spent over budgeted, uncapped. Zero when nothing is budgeted.
	Percentage decimal.Decimal
	Status     Status
}

// ProgressPercentage is Percentage capped at 100, suitable for progress bars.
func (r ComparisonRow) ProgressPercentage() decimal.Decimal {
	return decimal.Min(r.Percentage, hundred)
}

// CompareBudgetToActual compares every budget of the target month with the
// expenses recorded in it. targetMonth is zero-based.
func CompareBudgetToActual(l *Ledger, targetMonth, targetYear int) []ComparisonRow {
	return ComparePeriod(l, NewPeriod(targetMonth, targetYear))
}

// ComparePeriod is CompareBudgetToActual for an already built Period.
// One row is returned per budget of the period, in budget order; categories
// with spending but no budget produce no row.
func ComparePeriod(l *Ledger, p Period) []ComparisonRow {
	rows := make([]ComparisonRow, 0)
	if !p.Valid() {
		return rows
	}

	spending := expenseTotals(l.RecordsIn(p))
	for _, b := range l.BudgetsIn(p) {
		spent, ok := spending[Normalize(b.Category)]
		if !ok {
			spent = decimal.Zero
		}
		rows = append(rows, newComparisonRow(b, spent))
	}
	return rows
}

func newComparisonRow(b *entity.Budget, spent decimal.Decimal) ComparisonRow {
	remaining := b.Amount.Sub(spent)

	percentage := decimal.Zero
	if b.Amount.IsPositive() {
		percentage = spent.Mul(hundred).Div(b.Amount)
	}

	return ComparisonRow{
		BudgetID:         b.ID,
		Category:         b.Category,
		Budgeted:         b.Amount,
		Spent:            spent,
		Remaining:        remaining,
		RemainingClamped: decimal.Max(remaining, decimal.Zero),
		Percentage:       percentage,
		Status:           classify(percentage),
	}
}

// classify applies strict thresholds: above 100 is over, above 80 is warning.
func classify(percentage decimal.Decimal) Status {
	switch {
	case percentage.GreaterThan(hundred):
		return StatusOver
	case percentage.GreaterThan(warningThreshold):
		return StatusWarning
	default:
		return StatusGood
	}
}
