package budgeting

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// ExceedCheck is the outcome of testing a proposed expense against a budget.
type ExceedCheck struct {
	HasBudget     bool
	Exceeded      bool
	OverAmount    decimal.Decimal
	CurrentSpent  decimal.Decimal
	Budgeted      decimal.Decimal
	NewTotalSpent decimal.Decimal
}

// FundsCheck is the outcome of testing a proposed budget against available funds.
type FundsCheck struct {
	Available decimal.Decimal
	Proposed  decimal.Decimal
	Shortfall decimal.Decimal
	Exceeded  bool
}

// AvailableCategoriesFor returns the catalog entries that have no budget yet
// among budgetsForPeriod. Matching is case-insensitive and catalog order is kept.
func AvailableCategoriesFor(budgetsForPeriod []*entity.Budget, catalog []entity.CatalogCategory) []entity.CatalogCategory {
	taken := make(map[string]struct{}, len(budgetsForPeriod))
	for _, b := range budgetsForPeriod {
		if b != nil {
			taken[Normalize(b.Category)] = struct{}{}
		}
	}

	available := make([]entity.CatalogCategory, 0, len(catalog))
	for _, c := range catalog {
		if _, ok := taken[Normalize(c.Value)]; ok {
			continue
		}
		available = append(available, c)
	}
	return available
}

// WouldExceedBudget reports whether spending proposedExpense more in category
// would take it past its budget. Without a matching row nothing is exceeded.
func WouldExceedBudget(category string, proposedExpense decimal.Decimal, rows []ComparisonRow) ExceedCheck {
	proposed := proposedExpense.Abs()

	for _, row := range rows {
		if !SameCategory(row.Category, category) {
			continue
		}
		newTotal := row.Spent.Add(proposed)
		check := ExceedCheck{
			HasBudget:     true,
			CurrentSpent:  row.Spent,
			Budgeted:      row.Budgeted,
			NewTotalSpent: newTotal,
			OverAmount:    decimal.Zero,
		}
		if newTotal.GreaterThan(row.Budgeted) {
			check.Exceeded = true
			check.OverAmount = newTotal.Sub(row.Budgeted)
		}
		return check
	}

	return ExceedCheck{
		OverAmount:    decimal.Zero,
		CurrentSpent:  decimal.Zero,
		Budgeted:      decimal.Zero,
		NewTotalSpent: decimal.Zero,
	}
}

// AvailableFunds is the income left once every budget of the period is
// accounted for: a budget with spending consumes what was spent, an untouched
// budget consumes its planned amount.
func AvailableFunds(totalIncome decimal.Decimal, rows []ComparisonRow) decimal.Decimal {
	available := totalIncome
	for _, row := range rows {
		if row.Spent.IsPositive() {
			available = available.Sub(row.Spent)
		} else {
			available = available.Sub(row.Budgeted)
		}
	}
	return available
}

// AvailableFundsFor computes AvailableFunds from the ledger for p. Income is
// counted over every record of the ledger, budgets only over p. The budget
// identified by exclude is left out, which lets an edit reuse its own share.
func AvailableFundsFor(l *Ledger, p Period, exclude uuid.UUID) decimal.Decimal {
	income := decimal.Zero
	for _, r := range l.Records() {
		if r.IsIncome() {
			income = income.Add(r.Amount)
		}
	}

	rows := ComparePeriod(l, p)
	kept := rows[:0]
	for _, row := range rows {
		if exclude != uuid.Nil && row.BudgetID == exclude {
			continue
		}
		kept = append(kept, row)
	}
	return AvailableFunds(income, kept)
}

// ExceedsAvailableFunds reports whether proposed is larger than available.
func ExceedsAvailableFunds(proposed, available decimal.Decimal) FundsCheck {
	check := FundsCheck{
		Available: available,
		Proposed:  proposed,
		Shortfall: decimal.Zero,
	}
	if proposed.GreaterThan(available) {
		check.Exceeded = true
		check.Shortfall = proposed.Sub(available)
	}
	return check
}
