package budgeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

func TestNewLedgerKeepsSingleCurrency(t *testing.T) {
	usd := record("-10", "2024-03-01", "food")
	inr := record("-500", "2024-03-01", "food")
	inr.Currency = entity.CurrencyINR
	b := budget("food", "100", 3, 2024)

	l := NewLedger(entity.CurrencyUSD, []*entity.Record{usd, inr, nil}, []*entity.Budget{b, nil})

	assert.Equal(t, entity.CurrencyUSD, l.Currency())
	assert.Equal(t, []*entity.Record{usd}, l.Records())
	assert.Equal(t, []*entity.Budget{b}, l.Budgets())
}

func TestPartition(t *testing.T) {
	usd := record("-10", "2024-03-01", "food")
	inr := record("-500", "2024-03-01", "food")
	inr.Currency = entity.CurrencyINR
	inrBudget := budget("food", "1000", 3, 2024)
	inrBudget.Currency = entity.CurrencyINR

	ledgers := Partition([]*entity.Record{usd, inr}, []*entity.Budget{inrBudget})

	require.Len(t, ledgers, 2)
	assert.Len(t, ledgers[entity.CurrencyUSD].Records(), 1)
	assert.Empty(t, ledgers[entity.CurrencyUSD].Budgets())
	assert.Len(t, ledgers[entity.CurrencyINR].Records(), 1)
	assert.Len(t, ledgers[entity.CurrencyINR].Budgets(), 1)
}

func TestNilLedgerIsEmpty(t *testing.T) {
	var l *Ledger

	assert.Empty(t, l.Records())
	assert.Empty(t, l.Budgets())
	assert.Empty(t, l.RecordsIn(NewPeriod(2, 2024)))
	assert.Empty(t, CompareBudgetToActual(l, 2, 2024))
}
