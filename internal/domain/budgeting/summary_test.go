package budgeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

func TestSummarizePeriod(t *testing.T) {
	records := []*entity.Record{
		record("4000", "2024-03-01", "salary"),
		record("-1000", "2024-03-02", "rent"),
		record("-200", "2024-03-05", "food"),
		record("-100", "2024-03-09", "Food"),
		record("-500", "2024-02-11", "rent"),
		record("100", "2024-02-01", "freelance"),
	}
	l := NewLedger(entity.CurrencyUSD, records, nil)

	summary := SummarizePeriod(l, BudgetPeriod(3, 2024), day("2024-03-10"))

	assertDecimal(t, "4000", summary.Totals.Income)
	assertDecimal(t, "1300", summary.Totals.Expenses)
	assertDecimal(t, "2700", summary.Totals.Net)
	assertDecimal(t, "67.5", summary.SavingsRate)
	assertDecimal(t, "500", summary.PreviousExpenses)
	assertDecimal(t, "160", summary.MonthlyChange)
	assertDecimal(t, "130", summary.AverageDailySpending)
	assert.Equal(t, 4, summary.RecordCount)

	assertDecimal(t, "4100", summary.AllTime.Income)
	assertDecimal(t, "1800", summary.AllTime.Expenses)

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Rent", summary.Categories[0].Category)
	assert.Equal(t, "Food", summary.Categories[1].Category)
	assertDecimal(t, "300", summary.Categories[1].Amount)
	assert.Equal(t, 2, summary.Categories[1].Count)

	require.Len(t, summary.Recent, 4)
	assert.Equal(t, day("2024-03-09"), summary.Recent[0].Date)
}

func TestSummarizePeriodPastAndFuture(t *testing.T) {
	records := []*entity.Record{record("-310", "2024-01-05", "food")}
	l := NewLedger(entity.CurrencyUSD, records, nil)

	past := SummarizePeriod(l, BudgetPeriod(1, 2024), day("2024-06-01"))
	assertDecimal(t, "10", past.AverageDailySpending)

	future := SummarizePeriod(l, BudgetPeriod(7, 2024), day("2024-06-01"))
	assertDecimal(t, "0", future.AverageDailySpending)
	assertDecimal(t, "0", future.SavingsRate)
	assertDecimal(t, "0", future.MonthlyChange)
}

func TestSummarizePeriodLimitsRecent(t *testing.T) {
	var records []*entity.Record
	for _, d := range []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07"} {
		records = append(records, record("-1", d, "food"))
	}
	l := NewLedger(entity.CurrencyUSD, records, nil)

	summary := SummarizePeriod(l, BudgetPeriod(3, 2024), day("2024-03-31"))

	require.Len(t, summary.Recent, 5)
	assert.Equal(t, day("2024-03-07"), summary.Recent[0].Date)
	assert.Equal(t, day("2024-03-03"), summary.Recent[4].Date)
}
