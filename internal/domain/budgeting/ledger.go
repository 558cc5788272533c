package budgeting

import (
	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// Ledger holds the records and budgets of a single currency.
// Every calculation runs over a Ledger so amounts of different currencies are
// never summed together. A nil *Ledger behaves as an empty one.
type Ledger struct {
	currency entity.Currency
	records  []*entity.Record
	budgets  []*entity.Budget
}

// NewLedger builds a Ledger for currency, keeping only the non-nil records and
// budgets denominated in that currency.
func NewLedger(currency entity.Currency, records []*entity.Record, budgets []*entity.Budget) *Ledger {
	l := &Ledger{currency: currency}
	for _, r := range records {
		if r != nil && r.Currency == currency {
			l.records = append(l.records, r)
		}
	}
	for _, b := range budgets {
		if b != nil && b.Currency == currency {
			l.budgets = append(l.budgets, b)
		}
	}
	return l
}

// Partition splits mixed-currency input into one Ledger per currency present.
func Partition(records []*entity.Record, budgets []*entity.Budget) map[entity.Currency]*Ledger {
	currencies := make(map[entity.Currency]struct{})
	for _, r := range records {
		if r != nil {
			currencies[r.Currency] = struct{}{}
		}
	}
	for _, b := range budgets {
		if b != nil {
			currencies[b.Currency] = struct{}{}
		}
	}

	ledgers := make(map[entity.Currency]*Ledger, len(currencies))
	for c := range currencies {
		ledgers[c] = NewLedger(c, records, budgets)
	}
	return ledgers
}

// Currency returns the ledger currency.
func (l *Ledger) Currency() entity.Currency {
	if l == nil {
		return ""
	}
	return l.currency
}

// Records returns every record of the ledger.
func (l *Ledger) Records() []*entity.Record {
	if l == nil {
		return nil
	}
	return l.records
}

// Budgets returns every budget of the ledger.
func (l *Ledger) Budgets() []*entity.Budget {
	if l == nil {
		return nil
	}
	return l.budgets
}

// RecordsIn returns the records dated inside p.
func (l *Ledger) RecordsIn(p Period) []*entity.Record {
	var out []*entity.Record
	for _, r := range l.Records() {
		if p.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

// BudgetsIn returns the budgets targeting p.
func (l *Ledger) BudgetsIn(p Period) []*entity.Budget {
	var out []*entity.Budget
	for _, b := range l.Budgets() {
		if p.Includes(b) {
			out = append(out, b)
		}
	}
	return out
}
