package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// exportFile is the on-disk layout read by every command.
type exportFile struct {
	Records []exportRecord `json:"records"`
	Budgets []exportBudget `json:"budgets"`
}

type exportRecord struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Currency      string          `json:"currency"`
}

type exportBudget struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Currency string          `json:"currency"`
}

// readExport decodes the export at path into domain entities.
// Records with an unreadable date are kept but fall in no month.
func readExport(path string) ([]*entity.Record, []*entity.Budget, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read export: %w", err)
	}

	var file exportFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse export %s: %w", path, err)
	}

	records := make([]*entity.Record, 0, len(file.Records))
	for i, r := range file.Records {
		date, err := parseDate(r.Date)
		if err != nil {
			slog.Warn("Record has an unreadable date", "index", i, "date", r.Date)
		}
		records = append(records, entity.NewRecord(
			"",
			r.Description,
			r.Amount,
			date,
			r.Category,
			entity.PaymentMethod(r.PaymentMethod),
			entity.Currency(r.Currency),
		))
	}

	budgets := make([]*entity.Budget, 0, len(file.Budgets))
	for _, b := range file.Budgets {
		budgets = append(budgets, entity.NewBudget("", b.Category, b.Amount, b.Month, b.Year, entity.Currency(b.Currency)))
	}

	slog.Debug("Export loaded", "path", path, "records", len(records), "budgets", len(budgets))
	return records, budgets, nil
}

// loadLedger reads the export and keeps the entries in currency.
func (a *app) loadLedger() (*budgeting.Ledger, error) {
	currency := entity.Currency(a.v.GetString("currency"))
	if !currency.IsValid() {
		return nil, fmt.Errorf("unsupported currency %q", currency)
	}

	records, budgets, err := readExport(a.v.GetString("data"))
	if err != nil {
		return nil, err
	}

	ledgers := budgeting.Partition(records, budgets)
	// A missing ledger is nil, which the engine treats as empty.
	return ledgers[currency], nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// resolvePeriod turns one-based month and year flags into a period.
// Zero values fall back to the current month.
func resolvePeriod(month, year int, now time.Time) (budgeting.Period, error) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return budgeting.Period{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	return budgeting.BudgetPeriod(month, year), nil
}
