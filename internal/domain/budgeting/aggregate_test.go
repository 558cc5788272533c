package budgeting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

func sampleRecords() []*entity.Record {
	return []*entity.Record{
		record("3000", "2024-01-01", "Salary"),
		record("-120.50", "2024-01-03", "food"),
		record("-40", "2024-01-09", " FOOD "),
		record("-900", "2024-02-01", "rent"),
		record("250.25", "2024-02-14", "freelance"),
		record("-15", "2023-12-30", ""),
	}
}

func TestCalculateTotal(t *testing.T) {
	assertDecimal(t, "2174.75", CalculateTotal(sampleRecords()))
	assertDecimal(t, "0", CalculateTotal(nil))
	assertDecimal(t, "-5", CalculateTotal([]*entity.Record{nil, record("-5", "2024-01-01", "food")}))
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory(sampleRecords())

	require.Len(t, groups, 5)
	assert.Equal(t, []string{"salary", "food", "rent", "freelance", "other"}, []string{
		groups[0].Key, groups[1].Key, groups[2].Key, groups[3].Key, groups[4].Key,
	})

	food := groups[1]
	assert.Equal(t, "Food", food.Category)
	assert.Equal(t, 2, food.Count)
	assert.Len(t, food.Records, 2)
	assertDecimal(t, "-160.50", food.Total)

	assert.Equal(t, "Other", groups[4].Category)
}

func TestGroupByCategoryIsIdempotent(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, GroupByCategory(records), GroupByCategory(records))
}

func TestGroupByCategoryConservesSum(t *testing.T) {
	records := sampleRecords()

	sum := decimal.Zero
	for _, g := range GroupByCategory(records) {
		sum = sum.Add(g.Total)
	}
	assert.True(t, sum.Equal(CalculateTotal(records)))
}

func TestGroupByMonth(t *testing.T) {
	months := GroupByMonth(sampleRecords())

	require.Len(t, months, 3)
	assert.Equal(t, "Dec 2023", months[0].Label)
	assert.Equal(t, "Jan 2024", months[1].Label)
	assert.Equal(t, "Feb 2024", months[2].Label)

	jan := months[1]
	assertDecimal(t, "3000", jan.Income)
	assertDecimal(t, "160.50", jan.Expenses)
	assertDecimal(t, "2839.50", jan.Total)
	assert.Equal(t, 3, jan.Count)
}

func TestGroupByMonthSignPartition(t *testing.T) {
	records := sampleRecords()

	income, expenses := decimal.Zero, decimal.Zero
	for _, m := range GroupByMonth(records) {
		income = income.Add(m.Income)
		expenses = expenses.Add(m.Expenses)
	}
	assert.True(t, income.Sub(expenses).Equal(CalculateTotal(records)))
}

func TestGroupByMonthSkipsUndatedRecords(t *testing.T) {
	undated := record("-10", "2024-01-01", "food")
	undated.Date = time.Time{}

	months := GroupByMonth([]*entity.Record{undated, record("-5", "2024-01-02", "food")})

	require.Len(t, months, 1)
	assert.Equal(t, 1, months[0].Count)
}
