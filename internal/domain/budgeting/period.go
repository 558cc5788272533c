package budgeting

import (
	"fmt"
	"time"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// Period identifies a calendar month. MonthIndex is zero-based (January == 0),
// while budgets store a one-based month; BudgetPeriod is the only place the two meet.
type Period struct {
	Year       int
	MonthIndex int
}

// NewPeriod creates a Period from a zero-based month index and a year.
func NewPeriod(monthIndex, year int) Period {
	return Period{Year: year, MonthIndex: monthIndex}
}

// BudgetPeriod converts a budget's one-based month into a Period.
func BudgetPeriod(month, year int) Period {
	return Period{Year: year, MonthIndex: month - 1}
}

// PeriodOf returns the Period containing t, evaluated in UTC.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), MonthIndex: int(t.Month()) - 1}
}

// Valid reports whether the month index is within 0 and 11.
func (p Period) Valid() bool {
	return p.MonthIndex >= 0 && p.MonthIndex <= 11
}

// Month returns the calendar month.
func (p Period) Month() time.Month {
	return time.Month(p.MonthIndex + 1)
}

// Contains reports whether t falls inside the period. Zero times never match.
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return PeriodOf(t) == p
}

// Includes reports whether the budget targets this period.
func (p Period) Includes(b *entity.Budget) bool {
	return b != nil && BudgetPeriod(b.Month, b.Year) == p
}

// Previous returns the calendar month before p.
func (p Period) Previous() Period {
	if p.MonthIndex == 0 {
		return Period{Year: p.Year - 1, MonthIndex: 11}
	}
	return Period{Year: p.Year, MonthIndex: p.MonthIndex - 1}
}

// Start returns the first instant of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant after the period.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Days returns the number of days in the period.
func (p Period) Days() int {
	return p.End().AddDate(0, 0, -1).Day()
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.MonthIndex < other.MonthIndex
}

// Label returns a short human label such as "Jan 2024".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.Month().String()[:3], p.Year)
}

// Key returns a sortable key such as "2024-01".
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.MonthIndex+1)
}
